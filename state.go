package dragdrop

// DragState is the authoritative model of the drag in progress. The empty
// string stands for "no value" in the id fields and nil for the positions and
// the item. Pointer fields are never mutated after a transition installs them,
// so a copied DragState is a stable snapshot.
type DragState struct {
	IsDragging        bool
	StartPosition     *Position
	CurrentPosition   *Position
	DraggedItem       *DraggableItem
	DraggedID         string
	SourceContainerID string
	TargetContainerID string

	// SessionID identifies one drag from START_DRAG until the state returns
	// to the idle shape.
	SessionID string
}

// Idle reports whether s is the all-empty idle shape.
func (s DragState) Idle() bool {
	return s == DragState{}
}

// Action is one of StartDrag, UpdateDrag, SetTargetContainer, EndDrag or
// CancelDrag.
type Action interface {
	isAction()
}

// StartDrag seeds a drag: the source and target container both become
// ContainerID and the start and current positions both become Position.
type StartDrag struct {
	Item        DraggableItem
	ID          string
	ContainerID string
	Position    Position
	SessionID   string
}

// UpdateDrag moves the current position. The target container is replaced
// only when ReplaceTarget is set; Target "" then clears it.
type UpdateDrag struct {
	Position      Position
	Target        string
	ReplaceTarget bool
}

// SetTargetContainer overrides the target container; "" clears it.
type SetTargetContainer struct {
	ID string
}

// EndDrag finishes a drag. When HasTarget is set, Target overrides the
// target container recorded in the state.
type EndDrag struct {
	Target    string
	HasTarget bool
	Index     int
}

// CancelDrag discards a drag and resets to the idle shape immediately.
type CancelDrag struct{}

// resetDrag returns an ended drag to the idle shape once its grace delay has
// elapsed. It is ignored if another drag has started since.
type resetDrag struct {
	SessionID string
}

func (StartDrag) isAction()          {}
func (UpdateDrag) isAction()         {}
func (SetTargetContainer) isAction() {}
func (EndDrag) isAction()            {}
func (CancelDrag) isAction()         {}
func (resetDrag) isAction()          {}

// Transition is the drag state machine. It is pure: s is never modified and
// actions that do not apply in the current state return s unchanged.
//
//	Idle     START_DRAG           -> Dragging
//	Dragging UPDATE_DRAG          -> Dragging
//	Dragging SET_TARGET_CONTAINER -> Dragging
//	Dragging END_DRAG             -> Idle (fields kept until reset)
//	Dragging CANCEL_DRAG          -> Idle (all fields cleared)
func Transition(s DragState, a Action) DragState {
	switch a := a.(type) {
	case StartDrag:
		if s.IsDragging {
			return s
		}
		item := a.Item
		start, cur := a.Position, a.Position
		return DragState{
			IsDragging:        true,
			StartPosition:     &start,
			CurrentPosition:   &cur,
			DraggedItem:       &item,
			DraggedID:         a.ID,
			SourceContainerID: a.ContainerID,
			TargetContainerID: a.ContainerID,
			SessionID:         a.SessionID,
		}

	case UpdateDrag:
		if !s.IsDragging {
			return s
		}
		cur := a.Position
		s.CurrentPosition = &cur
		if a.ReplaceTarget {
			s.TargetContainerID = a.Target
		}
		return s

	case SetTargetContainer:
		if !s.IsDragging {
			return s
		}
		s.TargetContainerID = a.ID
		return s

	case EndDrag:
		if !s.IsDragging {
			return s
		}
		s.IsDragging = false
		s.TargetContainerID = finalTarget(s, a)
		return s

	case CancelDrag:
		return DragState{}

	case resetDrag:
		if s.IsDragging || s.SessionID != a.SessionID {
			return s
		}
		return DragState{}
	}
	return s
}

func finalTarget(s DragState, a EndDrag) string {
	if a.HasTarget {
		return a.Target
	}
	return s.TargetContainerID
}

// Result classifies how the drag in s ends under a. It returns nil when s is
// not dragging.
func Result(s DragState, a EndDrag) *DragResult {
	if !s.IsDragging || s.DraggedItem == nil {
		return nil
	}
	target := finalTarget(s, a)
	res := &DragResult{
		Item:        *s.DraggedItem,
		Source:      DropLocation{ID: s.SourceContainerID, Index: s.DraggedItem.Index},
		IsDropped:   target != "",
		IsReordered: target != "" && target == s.SourceContainerID,
		IsMoved:     target != "" && target != s.SourceContainerID,
	}
	if target != "" {
		res.Destination = &DropLocation{ID: target, Index: a.Index}
	}
	return res
}
