package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dragdrop"
)

// Cursor is a dragdrop.Document for an ebiten window. Cursor affordances map
// to ebiten cursor shapes; markers are kept for the game to query while
// drawing.
type Cursor struct {
	setShape func(ebiten.CursorShapeType)
	markers  map[string]bool
}

// NewCursor creates a Cursor that applies shapes with ebiten.SetCursorShape.
func NewCursor() *Cursor {
	return &Cursor{setShape: ebiten.SetCursorShape, markers: make(map[string]bool)}
}

// cursorShape maps an engine affordance to the closest ebiten cursor. Ebiten
// has no closed-hand cursor; the move cursor is the nearest match.
func cursorShape(shape dragdrop.CursorShape) ebiten.CursorShapeType {
	switch shape {
	case dragdrop.CursorGrabbing:
		return ebiten.CursorShapeMove
	default:
		return ebiten.CursorShapeDefault
	}
}

// SetCursor applies shape to the window cursor.
func (c *Cursor) SetCursor(shape dragdrop.CursorShape) {
	c.setShape(cursorShape(shape))
}

// SetMarker sets or clears a named marker.
func (c *Cursor) SetMarker(name string, on bool) {
	if on {
		c.markers[name] = true
	} else {
		delete(c.markers, name)
	}
}

// Marker reports whether the named marker is set.
func (c *Cursor) Marker(name string) bool {
	return c.markers[name]
}
