package dragdrop

// TouchPoint is a single active touch contact.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// InputEvent is a host pointer, touch, or keyboard event. Mouse events carry
// their coordinates in X and Y; touch events carry touch point lists mirroring
// the platform's touches, targetTouches and changedTouches.
type InputEvent struct {
	Kind EventKind
	X, Y float64

	Touches        []TouchPoint // contacts currently on the surface
	TargetTouches  []TouchPoint // contacts that started on the event target
	ChangedTouches []TouchPoint // contacts that changed in this event

	Key Key // valid for EventKeyDown

	defaultPrevented bool
}

// PreventDefault asks the host to skip its native behavior for this event
// (text selection, native drag, scrolling).
func (e *InputEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *InputEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PositionOf converts a pointer or touch event into a single Position.
// Touch lists are consulted in order Touches, TargetTouches, ChangedTouches,
// so a touch-end (which has no remaining Touches) still resolves from
// ChangedTouches. Events without touch points use X and Y. A nil event
// yields the zero position.
func PositionOf(ev *InputEvent) Position {
	if ev == nil {
		return Position{}
	}
	for _, list := range [...][]TouchPoint{ev.Touches, ev.TargetTouches, ev.ChangedTouches} {
		if len(list) > 0 {
			return Position{X: list[0].X, Y: list[0].Y}
		}
	}
	return Position{X: ev.X, Y: ev.Y}
}
