package dragdrop

// DragEventType identifies a drag lifecycle event.
type DragEventType uint8

const (
	DragStarted   DragEventType = iota // a drag began
	DragMoved                          // the position or target changed
	DragEnded                          // the drag finished with a result
	DragCancelled                      // the drag was discarded
)

// DragEvent carries a drag lifecycle event to an EventStore.
type DragEvent struct {
	Type      DragEventType
	SessionID string
	Item      DraggableItem
	Source    string
	Target    string
	Position  Position
	Result    *DragResult // set for DragEnded only
}

// EventStore is the interface for optional ECS integration. When set on a
// Config, drag lifecycle events are forwarded to it.
type EventStore interface {
	EmitEvent(event DragEvent)
}

func (e *Engine) emit(t DragEventType, s DragState, res *DragResult) {
	if e.store == nil {
		return
	}
	ev := DragEvent{
		Type:      t,
		SessionID: s.SessionID,
		Source:    s.SourceContainerID,
		Target:    s.TargetContainerID,
		Result:    res,
	}
	if s.DraggedItem != nil {
		ev.Item = *s.DraggedItem
	}
	if s.CurrentPosition != nil {
		ev.Position = *s.CurrentPosition
	}
	e.store.EmitEvent(ev)
}
