package dragdrop

// Position is a viewport coordinate. No unit conversion is applied anywhere
// in the engine; hosts pass whatever space their drop container bounds use.
type Position struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints builds a Rect from two opposite corners in any order.
func RectFromPoints(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Area returns Width*Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// DraggableItem is the payload being moved. Type gates which drop containers
// may accept it.
type DraggableItem struct {
	ID    string
	Type  string
	Index int // position within the source container
	Data  any
}

// DropLocation identifies a container and a position within it.
type DropLocation struct {
	ID    string
	Index int
}

// DragResult is the terminal classification of a completed drag. It is
// produced by EndDrag only; a cancelled drag has no result.
type DragResult struct {
	Item        DraggableItem
	Source      DropLocation
	Destination *DropLocation // nil when the item was not dropped on a container
	IsDropped   bool
	IsReordered bool
	IsMoved     bool
}

// EventKind identifies a kind of host input event.
type EventKind uint8

const (
	EventPointerDown EventKind = iota // a pointer button was pressed
	EventPointerMove                  // the pointer moved
	EventPointerUp                    // a pointer button was released
	EventTouchStart                   // a touch point began
	EventTouchMove                    // a touch point moved
	EventTouchEnd                     // a touch point was lifted
	EventKeyDown                      // a key was pressed
)

var eventKindNames = [...]string{
	EventPointerDown: "pointerdown",
	EventPointerMove: "pointermove",
	EventPointerUp:   "pointerup",
	EventTouchStart:  "touchstart",
	EventTouchMove:   "touchmove",
	EventTouchEnd:    "touchend",
	EventKeyDown:     "keydown",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Key identifies a keyboard key carried by an EventKeyDown event. Only the
// keys the engine reacts to are named.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
)

// CursorShape is the cursor affordance requested from a Document.
type CursorShape uint8

const (
	CursorDefault  CursorShape = iota // host default cursor
	CursorGrabbing                    // a drag is in progress
)

// MarkerDragging is the document marker set while a drag is in progress.
const MarkerDragging = "dragging"

// Document receives the visual affordances the engine toggles on the root of
// the host surface while a drag is in progress.
type Document interface {
	SetCursor(shape CursorShape)
	SetMarker(name string, on bool)
}

type nopDocument struct{}

func (nopDocument) SetCursor(CursorShape)  {}
func (nopDocument) SetMarker(string, bool) {}
