package dragdrop

// dragListenerKinds are the global events observed while dragging.
var dragListenerKinds = [...]EventKind{
	EventPointerMove,
	EventPointerUp,
	EventTouchMove,
	EventTouchEnd,
	EventKeyDown,
}

// coordinator owns the global listeners and document affordances that exist
// only while a drag is in progress. acquire and release are both idempotent;
// release runs on every exit from Dragging, including forced resets and
// Engine.Close.
type coordinator struct {
	input    InputSource
	doc      Document
	handles  []CallbackHandle
	acquired bool
}

func (c *coordinator) acquire(e *Engine) {
	if c.acquired {
		return
	}
	c.acquired = true
	if c.input != nil {
		for _, kind := range dragListenerKinds {
			c.handles = append(c.handles, c.input.On(kind, e.handleInput))
		}
	}
	c.doc.SetCursor(CursorGrabbing)
	c.doc.SetMarker(MarkerDragging, true)
}

func (c *coordinator) release() {
	if !c.acquired {
		return
	}
	c.acquired = false
	for i, h := range c.handles {
		h.Remove()
		c.handles[i] = CallbackHandle{}
	}
	c.handles = c.handles[:0]
	c.doc.SetCursor(CursorDefault)
	c.doc.SetMarker(MarkerDragging, false)
}

// handleInput routes a global input event observed during a drag.
func (e *Engine) handleInput(ev *InputEvent) {
	if !e.state.IsDragging {
		return
	}
	switch ev.Kind {
	case EventPointerMove, EventTouchMove:
		e.UpdateDrag(ev)
	case EventPointerUp, EventTouchEnd:
		e.EndDrag()
	case EventKeyDown:
		if ev.Key == KeyEscape {
			ev.PreventDefault()
			e.CancelDrag()
		}
	}
}
