package dragdrop

import "errors"

var (
	// ErrInvalidDropContainer is returned when a drop container is registered
	// without an id or a bounds source.
	ErrInvalidDropContainer = errors.New("dragdrop: invalid drop container")

	// ErrInvalidDropContainerID is returned when unregistering with an empty id.
	ErrInvalidDropContainerID = errors.New("dragdrop: invalid drop container id")

	// ErrBoundsPanic wraps a panic raised by a BoundsSource during a hit test.
	ErrBoundsPanic = errors.New("dragdrop: bounds source panicked")
)

// BoundsSource exposes the current bounding box of a drop container. It is
// queried on every hit test and never cached, so layout changes during a drag
// (scrolling, resizing) need no re-registration.
type BoundsSource interface {
	Bounds() (Rect, error)
}

// BoundsFunc adapts a function to a BoundsSource.
type BoundsFunc func() (Rect, error)

// Bounds calls f.
func (f BoundsFunc) Bounds() (Rect, error) {
	return f()
}

// StaticBounds is a BoundsSource for containers that never move.
type StaticBounds Rect

// Bounds returns the rectangle unchanged.
func (b StaticBounds) Bounds() (Rect, error) {
	return Rect(b), nil
}

type dropContainer struct {
	id      string
	bounds  BoundsSource
	accepts []string
	seq     uint64 // registration order, preserved on overwrite
}

func (c *dropContainer) accept(itemType string) bool {
	for _, t := range c.accepts {
		if t == itemType {
			return true
		}
	}
	return false
}

// registry maps container ids to their registration. Entries are scanned in
// registration order so equal-area ties resolve deterministically.
type registry struct {
	entries map[string]*dropContainer
	order   []*dropContainer
	nextSeq uint64
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]*dropContainer)}
}

func (r *registry) register(id string, bounds BoundsSource, accepts []string) error {
	if id == "" || bounds == nil {
		return ErrInvalidDropContainer
	}
	if f, ok := bounds.(BoundsFunc); ok && f == nil {
		return ErrInvalidDropContainer
	}
	acc := append([]string(nil), accepts...)
	if c, ok := r.entries[id]; ok {
		c.bounds = bounds
		c.accepts = acc
		return nil
	}
	r.nextSeq++
	c := &dropContainer{id: id, bounds: bounds, accepts: acc, seq: r.nextSeq}
	r.entries[id] = c
	r.order = append(r.order, c)
	return nil
}

func (r *registry) unregister(id string) error {
	if id == "" {
		return ErrInvalidDropContainerID
	}
	c, ok := r.entries[id]
	if !ok {
		return nil
	}
	delete(r.entries, id)
	for i := range r.order {
		if r.order[i] == c {
			copy(r.order[i:], r.order[i+1:])
			r.order[len(r.order)-1] = nil
			r.order = r.order[:len(r.order)-1]
			break
		}
	}
	return nil
}

func (r *registry) ids() []string {
	out := make([]string, len(r.order))
	for i, c := range r.order {
		out[i] = c.id
	}
	return out
}

func (r *registry) len() int {
	return len(r.order)
}
