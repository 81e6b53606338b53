package viewer

import (
	"math"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Zoom limits and the per-notch zoom factor.
const (
	MinZoom    = 0.25
	MaxZoom    = 4.0
	zoomFactor = 1.25
)

// Camera maps terminal characters onto world pixels.
// A character is 1/Zoom pixels wide and 2/Zoom pixels tall, since terminal
// cells are about twice as tall as they are wide.
type Camera struct {
	OffsetX float64 // World X under the left screen column
	OffsetY float64 // World Y under the top screen row
	Zoom    float64
}

// NewCamera returns a camera at the world origin with zoom 1.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

func (c Camera) charW() float64 { return 1 / c.Zoom }
func (c Camera) charH() float64 { return 2 / c.Zoom }

// ScreenToWorld returns the world pixel under the top-left corner of
// character (sx, sy).
func (c Camera) ScreenToWorld(sx, sy int) (wx, wy float64) {
	return c.OffsetX + float64(sx)*c.charW(), c.OffsetY + float64(sy)*c.charH()
}

// WorldToScreen is the inverse of ScreenToWorld, truncated to a character.
func (c Camera) WorldToScreen(wx, wy float64) (sx, sy int) {
	return int(math.Floor((wx - c.OffsetX) / c.charW())), int(math.Floor((wy - c.OffsetY) / c.charH()))
}

// WorldToCell returns the grid cell containing the world pixel. The result
// may lie outside the grid; callers bounds-check it.
func WorldToCell(wx, wy float64, cellSize int) (row, col int) {
	return core.FloorDiv(int(math.Floor(wy)), cellSize), core.FloorDiv(int(math.Floor(wx)), cellSize)
}

// Pan moves the world by (dx, dy) characters, as if dragged by the mouse.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX -= float64(dx) * c.charW()
	c.OffsetY -= float64(dy) * c.charH()
}

// ZoomAt multiplies the zoom by zoomFactor^steps while keeping the world
// point under character (sx, sy) fixed.
func (c *Camera) ZoomAt(sx, sy, steps int) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = core.ClampF(c.Zoom*math.Pow(zoomFactor, float64(steps)), MinZoom, MaxZoom)
	c.OffsetX = wx - float64(sx)*c.charW()
	c.OffsetY = wy - float64(sy)*c.charH()
}

// CenterOn positions the camera so that world point (wx, wy) sits in the
// middle of a w x h character view.
func (c *Camera) CenterOn(wx, wy float64, w, h int) {
	c.OffsetX = wx - float64(w)*c.charW()/2
	c.OffsetY = wy - float64(h)*c.charH()/2
}

// Reset restores zoom 1 and centres on (wx, wy).
func (c *Camera) Reset(wx, wy float64, w, h int) {
	c.Zoom = 1
	c.CenterOn(wx, wy, w, h)
}
