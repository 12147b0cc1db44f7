package dragdrop

// InputSource is where the engine attaches its global listeners while a drag
// is in progress.
type InputSource interface {
	On(kind EventKind, fn func(*InputEvent)) CallbackHandle
}

type listener struct {
	id uint32
	fn func(*InputEvent)
}

// Dispatcher is a registry of global input listeners keyed by event kind. A
// host feeds it every input event through Dispatch; the engine attaches to it
// while dragging. A Dispatcher must only be used from the host's update
// goroutine.
type Dispatcher struct {
	listeners map[EventKind][]listener
	nextID    uint32
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventKind][]listener)}
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id     uint32
	kind   EventKind
	remove func(kind EventKind, id uint32)
}

// Remove unregisters the listener so it no longer fires. Removing twice, or
// removing the zero handle, does nothing.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.kind, h.id)
}

// On registers fn for events of the given kind.
func (d *Dispatcher) On(kind EventKind, fn func(*InputEvent)) CallbackHandle {
	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], listener{id: id, fn: fn})
	return CallbackHandle{id: id, kind: kind, remove: d.remove}
}

func (d *Dispatcher) remove(kind EventKind, id uint32) {
	s := d.listeners[kind]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			d.listeners[kind] = s[:len(s)-1]
			return
		}
	}
}

// Dispatch delivers ev to every listener registered for ev.Kind, in
// registration order. Listeners may add or remove listeners while being
// dispatched; changes take effect from the next Dispatch.
func (d *Dispatcher) Dispatch(ev *InputEvent) {
	s := d.listeners[ev.Kind]
	if len(s) == 0 {
		return
	}
	snapshot := make([]listener, len(s))
	copy(snapshot, s)
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// Len returns the number of listeners registered for kind.
func (d *Dispatcher) Len(kind EventKind) int {
	return len(d.listeners[kind])
}
