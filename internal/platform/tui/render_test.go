package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-life/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd", core.ColorDarkGray)
	s.DrawText(0, 1, "gen 1", core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "abcd  ")
	}
	if lines[1] != "gen 1 " {
		t.Errorf("line 1 = %q, expected %q", lines[1], "gen 1 ")
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
