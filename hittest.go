package dragdrop

import "fmt"

// hitTest returns the id of the most specific drop container accepting
// itemType whose current bounds contain pos, or "" if none does.
//
// Containers may nest visually without an explicit parent/child tree: among
// all containing rectangles the smallest area wins. Equal areas resolve to the
// earliest registered container. Cost is one Bounds call per accepting
// container; there is no spatial index.
func (r *registry) hitTest(pos Position, itemType string) (string, error) {
	var (
		best     *dropContainer
		bestArea float64
	)
	for _, c := range r.order {
		if !c.accept(itemType) {
			continue
		}
		b, err := c.readBounds()
		if err != nil {
			return "", fmt.Errorf("bounds of drop container %q: %w", c.id, err)
		}
		if !b.Contains(pos.X, pos.Y) {
			continue
		}
		area := b.Area()
		if best == nil || area < bestArea {
			best = c
			bestArea = area
		}
	}
	if best == nil {
		return "", nil
	}
	return best.id, nil
}

// readBounds queries the container's bounds source, turning a panic in host
// layout code into an error.
func (c *dropContainer) readBounds() (b Rect, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrBoundsPanic, r)
		}
	}()
	return c.bounds.Bounds()
}
