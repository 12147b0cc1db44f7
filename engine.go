package dragdrop

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidDragParameters is returned by StartDrag when the item, the
	// drag id, the source container id, or the triggering event is missing.
	ErrInvalidDragParameters = errors.New("dragdrop: invalid drag parameters")

	// ErrDragAlreadyInProgress is returned by StartDrag while dragging.
	ErrDragAlreadyInProgress = errors.New("dragdrop: drag already in progress")
)

type stateWatcher struct {
	id uint32
	fn func(DragState)
}

// Engine is the drag-and-drop facade. It owns the drag state, the drop
// container registry, and the listeners and affordances tied to an active
// drag. All methods must be called from the host's update goroutine; nothing
// blocks and nothing runs in the background.
type Engine struct {
	cfg   Config
	log   logrus.FieldLogger
	store EventStore

	state    DragState
	registry *registry
	coord    coordinator
	sched    scheduler
	ann      announcer

	watchers    []stateWatcher
	nextWatchID uint32
}

// NewEngine creates an idle engine. Unset Config fields take their defaults.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:      cfg,
		log:      cfg.Logger,
		store:    cfg.Store,
		registry: newRegistry(),
	}
	e.coord = coordinator{input: cfg.Input, doc: cfg.Document}
	e.ann = announcer{region: cfg.LiveRegion, sched: &e.sched, log: cfg.Logger}
	return e
}

// State returns a snapshot of the current drag state.
func (e *Engine) State() DragState {
	return e.state
}

// IsDragging reports whether a drag is in progress.
func (e *Engine) IsDragging() bool {
	return e.state.IsDragging
}

// Update advances the engine's timers by dt seconds: announcement removal and
// the post-drop reset. Call it once per tick.
func (e *Engine) Update(dt float32) {
	e.sched.update(dt)
}

// OnStateChange registers fn to run after every state change.
func (e *Engine) OnStateChange(fn func(DragState)) CallbackHandle {
	e.nextWatchID++
	id := e.nextWatchID
	e.watchers = append(e.watchers, stateWatcher{id: id, fn: fn})
	return CallbackHandle{id: id, remove: e.removeWatcher}
}

func (e *Engine) removeWatcher(_ EventKind, id uint32) {
	for i := range e.watchers {
		if e.watchers[i].id == id {
			copy(e.watchers[i:], e.watchers[i+1:])
			e.watchers[len(e.watchers)-1] = stateWatcher{}
			e.watchers = e.watchers[:len(e.watchers)-1]
			return
		}
	}
}

// dispatch applies a to the state machine and runs the entry and exit
// actions of the Idle/Dragging transition.
func (e *Engine) dispatch(a Action) {
	prev := e.state
	e.state = Transition(prev, a)

	switch {
	case !prev.IsDragging && e.state.IsDragging:
		e.coord.acquire(e)
	case prev.IsDragging && !e.state.IsDragging:
		e.coord.release()
	}

	if e.state != prev {
		for _, w := range append([]stateWatcher(nil), e.watchers...) {
			w.fn(e.state)
		}
	}
}

// StartDrag begins dragging item from containerID at the position of the
// triggering event and suppresses the event's default behavior. Invalid
// parameters are logged and returned; the state is left untouched.
func (e *Engine) StartDrag(item DraggableItem, id, containerID string, ev *InputEvent) error {
	if ev == nil {
		return e.rejectStart(item, id, containerID, fmt.Errorf("%w: no triggering event", ErrInvalidDragParameters))
	}
	if err := e.StartDragAt(item, id, containerID, PositionOf(ev)); err != nil {
		return err
	}
	ev.PreventDefault()
	return nil
}

// StartDragAt begins dragging item from containerID at pos.
func (e *Engine) StartDragAt(item DraggableItem, id, containerID string, pos Position) error {
	if item.ID == "" || id == "" || containerID == "" {
		return e.rejectStart(item, id, containerID, ErrInvalidDragParameters)
	}
	if e.state.IsDragging {
		return e.rejectStart(item, id, containerID,
			fmt.Errorf("%w: session %s", ErrDragAlreadyInProgress, e.state.SessionID))
	}

	session := uuid.NewString()
	e.dispatch(StartDrag{
		Item:        item,
		ID:          id,
		ContainerID: containerID,
		Position:    pos,
		SessionID:   session,
	})
	if !e.state.IsDragging || e.state.SessionID != session {
		// A state watcher already ended this session.
		return nil
	}
	e.log.WithFields(logrus.Fields{
		"session":   session,
		"item":      id,
		"container": containerID,
	}).Debug("dragdrop: drag started")
	e.ann.announce(fmt.Sprintf(e.cfg.Messages.Started, item.Type), e.cfg.Timing.StartAnnouncement)
	e.emit(DragStarted, e.state, nil)
	return nil
}

func (e *Engine) rejectStart(item DraggableItem, id, containerID string, err error) error {
	e.log.WithError(err).WithFields(logrus.Fields{
		"item":      item.ID,
		"id":        id,
		"container": containerID,
	}).Warn("dragdrop: drag not started")
	return err
}

// UpdateDrag moves the drag to the position of ev and refreshes the target
// container. It does nothing while idle.
func (e *Engine) UpdateDrag(ev *InputEvent) {
	e.UpdateDragAt(PositionOf(ev))
}

// UpdateDragAt moves the drag to pos and refreshes the target container from
// a fresh hit test. A failing hit test cancels the drag.
func (e *Engine) UpdateDragAt(pos Position) {
	if !e.state.IsDragging {
		return
	}
	target, err := e.registry.hitTest(pos, e.state.DraggedItem.Type)
	if err != nil {
		e.log.WithError(err).WithField("session", e.state.SessionID).Error("dragdrop: update failure, cancelling drag")
		e.CancelDrag()
		return
	}
	e.dispatch(UpdateDrag{Position: pos, Target: target, ReplaceTarget: true})
	e.emit(DragMoved, e.state, nil)
}

// EndOption overrides part of how EndDrag classifies the drop.
type EndOption func(*EndDrag)

// ToContainer drops onto id regardless of the last hit test. An empty id
// drops outside every container.
func ToContainer(id string) EndOption {
	return func(a *EndDrag) {
		a.Target = id
		a.HasTarget = true
	}
}

// AtIndex sets the destination index within the target container.
func AtIndex(index int) EndOption {
	return func(a *EndDrag) {
		a.Index = index
	}
}

// EndDrag finishes the drag and returns its classification, or nil if no drag
// is in progress. Listeners are released immediately; the remaining state is
// kept for the configured reset delay so a presentation layer can settle the
// drop, then cleared.
func (e *Engine) EndDrag(opts ...EndOption) *DragResult {
	if !e.state.IsDragging {
		return nil
	}
	var a EndDrag
	for _, opt := range opts {
		opt(&a)
	}

	res := Result(e.state, a)
	ended := Transition(e.state, a)
	e.dispatch(a)

	msg := e.cfg.Messages.Returned
	switch {
	case res.IsReordered:
		msg = e.cfg.Messages.Reordered
	case res.IsMoved:
		msg = e.cfg.Messages.Moved
	}
	e.ann.announce(msg, e.cfg.Timing.EndAnnouncement)
	e.emit(DragEnded, ended, res)

	session := ended.SessionID
	e.log.WithFields(logrus.Fields{
		"session": session,
		"target":  ended.TargetContainerID,
		"moved":   res.IsMoved,
	}).Debug("dragdrop: drag ended")
	e.sched.after(e.cfg.Timing.ResetDelay, func() {
		e.dispatch(resetDrag{SessionID: session})
	})
	return res
}

// CancelDrag discards the drag and returns to the idle shape immediately. No
// result is produced. Calling it while idle is harmless.
func (e *Engine) CancelDrag() {
	prev := e.state
	e.dispatch(CancelDrag{})
	if !prev.IsDragging {
		return
	}
	e.log.WithField("session", prev.SessionID).Debug("dragdrop: drag cancelled")
	e.ann.announce(e.cfg.Messages.Cancelled, e.cfg.Timing.CancelAnnouncement)
	e.emit(DragCancelled, prev, nil)
}

// SetTargetContainer overrides the target container of the active drag. An
// empty id clears it. It does nothing while idle.
func (e *Engine) SetTargetContainer(id string) {
	if !e.state.IsDragging {
		return
	}
	e.dispatch(SetTargetContainer{ID: id})
	e.emit(DragMoved, e.state, nil)
}

// RegisterDropContainer registers or replaces a drop container accepting the
// given item types. Containers may be registered at any time, including
// mid-drag.
func (e *Engine) RegisterDropContainer(id string, bounds BoundsSource, accepts []string) error {
	if err := e.registry.register(id, bounds, accepts); err != nil {
		return fmt.Errorf("register drop container %q: %w", id, err)
	}
	return nil
}

// UnregisterDropContainer removes a drop container. Removing an unknown id is
// not an error.
func (e *Engine) UnregisterDropContainer(id string) error {
	if err := e.registry.unregister(id); err != nil {
		return fmt.Errorf("unregister drop container: %w", err)
	}
	return nil
}

// DropContainers returns the registered container ids in registration order.
func (e *Engine) DropContainers() []string {
	return e.registry.ids()
}

// Close releases everything the engine holds on the host: an active drag is
// discarded without announcement, listeners and affordances are released, and
// pending announcements are removed. The engine stays usable afterwards.
func (e *Engine) Close() error {
	if e.state.IsDragging {
		prev := e.state
		e.dispatch(CancelDrag{})
		e.emit(DragCancelled, prev, nil)
	}
	e.coord.release()
	e.sched.flush()
	return nil
}
