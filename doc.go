// Package dragdrop is a drag-and-drop interaction engine for [Ebitengine]
// games and tools.
//
// The engine tracks one drag gesture at a time, resolves which registered
// drop container the pointer is over, and classifies how the item moved when
// the drag ends. It renders nothing; a presentation layer reads [Engine.State]
// (or subscribes with [Engine.OnStateChange]) to draw previews and highlight
// the current target.
//
// # Quick start
//
//	input := dragdrop.NewDispatcher()
//	engine := dragdrop.NewEngine(dragdrop.Config{Input: input})
//	defer engine.Close()
//
//	engine.RegisterDropContainer("todo", dragdrop.StaticBounds{X: 0, Y: 0, Width: 300, Height: 600}, []string{"card"})
//	engine.RegisterDropContainer("done", dragdrop.StaticBounds{X: 320, Y: 0, Width: 300, Height: 600}, []string{"card"})
//
//	// From a pointer-down handler on a card:
//	engine.StartDrag(dragdrop.DraggableItem{ID: "c1", Type: "card"}, "c1", "todo", ev)
//
// While dragging, the engine listens on the [InputSource] for pointer and
// touch moves (which update the target), pointer-up and touch-end (which end
// the drag), and Escape (which cancels it). Feed host input into the
// [Dispatcher] every tick, or use the ebitenhost package to do it from
// ebiten's input state, and call [Engine.Update] once per tick to advance
// announcement and reset timers.
//
// # Drop containers
//
// A container is a [BoundsSource] plus the item types it accepts. Bounds are
// read on every hit test, so containers that scroll or resize mid-drag need
// no re-registration. When containers overlap, the one with the smallest area
// wins, which lets a card slot nest inside a list inside a panel without an
// explicit tree. Equal areas resolve to the earliest registered container.
//
// # Accessibility
//
// Start, drop and cancel are announced to a [LiveRegion] with assertive
// politeness and removed after a short delay. Announcer failures are logged
// and never affect the drag.
//
// # ECS integration
//
// Set [Config.Store] to forward drag lifecycle events; the ecs package
// provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package dragdrop
