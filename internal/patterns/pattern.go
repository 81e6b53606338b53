// Package patterns provides the library of seed patterns that can be
// stamped onto a grid. Patterns are plain-text YAML files; the built-in
// ones are embedded and user ones are loaded from a directory.
package patterns

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrEmptyPattern is returned when a pattern has no live cells.
var ErrEmptyPattern = errors.New("pattern has no live cells")

// Offset is a live cell relative to the pattern's top-left corner.
type Offset struct {
	Row, Col int
}

// Pattern is a parsed seed pattern.
type Pattern struct {
	ID          string
	Name        string
	Kind        string // "still life", "oscillator", "spaceship", ...
	Period      int    // 0 when not periodic
	Description string
	Cells       []Offset
	Height      int
	Width       int
	FilePath    string // empty for built-in patterns
}

// YAMLPattern represents the YAML structure for a pattern file.
// Cells use the plaintext convention: 'O' (or '*') is alive, '.' is dead.
type YAMLPattern struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind,omitempty"`
	Period      int    `yaml:"period,omitempty"`
	Description string `yaml:"description,omitempty"`
	Cells       string `yaml:"cells"`
}

// ParseYAML parses a YAML pattern file.
func ParseYAML(data []byte) (Pattern, error) {
	var yp YAMLPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pattern{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yp.ID == "" {
		return Pattern{}, errors.New("pattern: missing id")
	}

	p := Pattern{
		ID:          yp.ID,
		Name:        yp.Name,
		Kind:        yp.Kind,
		Period:      yp.Period,
		Description: strings.TrimSpace(yp.Description),
	}
	if p.Name == "" {
		p.Name = p.ID
	}

	cells, h, w, err := parseCells(yp.Cells)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %s: %w", yp.ID, err)
	}
	p.Cells, p.Height, p.Width = cells, h, w
	return p, nil
}

// parseCells reads a plaintext cell block and returns live offsets and the
// bounding box of the live cells. Blank rows and columns around the live
// cells are trimmed, so offsets start at (0, 0).
func parseCells(text string) ([]Offset, int, int, error) {
	var cells []Offset
	minCol := math.MaxInt
	for row, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line = strings.TrimRight(line, " \t\r")
		for col, r := range []rune(line) {
			switch r {
			case 'O', 'o', '*':
				cells = append(cells, Offset{Row: row, Col: col})
				minCol = min(minCol, col)
			case '.', ' ':
			default:
				return nil, 0, 0, fmt.Errorf("invalid cell %q at row %d col %d", r, row, col)
			}
		}
	}
	if len(cells) == 0 {
		return nil, 0, 0, ErrEmptyPattern
	}

	// Rows are scanned in order, so the first cell has the smallest row.
	minRow := cells[0].Row
	height, width := 0, 0
	for i := range cells {
		cells[i].Row -= minRow
		cells[i].Col -= minCol
		height = max(height, cells[i].Row+1)
		width = max(width, cells[i].Col+1)
	}
	return cells, height, width, nil
}

// Size returns the pattern's bounding box in cells.
func (p Pattern) Size() (rows, cols int) {
	return p.Height, p.Width
}

// Place stamps the pattern with its top-left corner at (row, col).
// Placement is all-or-nothing: if any live cell would fall outside the
// grid, nothing is written and the grid's out-of-bounds error is returned.
func (p Pattern) Place(g *life.Grid, row, col int) error {
	for _, off := range p.Cells {
		if !g.InBounds(row+off.Row, col+off.Col) {
			return fmt.Errorf("pattern %s at (%d, %d): %w", p.ID, row, col, life.ErrOutOfBounds)
		}
	}
	for _, off := range p.Cells {
		if err := g.SetAlive(row+off.Row, col+off.Col); err != nil {
			return err
		}
	}
	return nil
}

// PlaceCentered stamps the pattern so that its bounding box is centred on
// (row, col).
func (p Pattern) PlaceCentered(g *life.Grid, row, col int) error {
	return p.Place(g, row-p.Height/2, col-p.Width/2)
}
