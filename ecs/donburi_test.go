package ecs

import (
	"testing"

	"github.com/phanxgames/dragdrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dragdrop.DragEvent
	DragEventType.Subscribe(world, func(w donburi.World, e dragdrop.DragEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dragdrop.DragEvent{
		Type:     dragdrop.DragStarted,
		Item:     dragdrop.DraggableItem{ID: "c1", Type: "card"},
		Source:   "list-a",
		Position: dragdrop.Position{X: 50, Y: 50},
	})
	store.EmitEvent(dragdrop.DragEvent{
		Type:   dragdrop.DragEnded,
		Source: "list-a",
		Target: "list-b",
		Result: &dragdrop.DragResult{IsDropped: true, IsMoved: true},
	})

	// Events are queued until processed.
	DragEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != dragdrop.DragStarted || e.Item.ID != "c1" || e.Position.X != 50 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != dragdrop.DragEnded || e.Result == nil || !e.Result.IsMoved {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_EngineLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	engine := dragdrop.NewEngine(dragdrop.Config{Store: NewDonburiStore(world)})

	var types []dragdrop.DragEventType
	DragEventType.Subscribe(world, func(w donburi.World, e dragdrop.DragEvent) {
		types = append(types, e.Type)
	})

	if err := engine.RegisterDropContainer("list-b", dragdrop.StaticBounds{X: 300, Width: 300, Height: 300}, []string{"card"}); err != nil {
		t.Fatal(err)
	}
	if err := engine.StartDragAt(dragdrop.DraggableItem{ID: "c1", Type: "card"}, "c1", "list-a", dragdrop.Position{X: 50, Y: 50}); err != nil {
		t.Fatal(err)
	}
	engine.UpdateDragAt(dragdrop.Position{X: 350, Y: 50})
	engine.EndDrag()
	events.ProcessAllEvents(world)

	want := []dragdrop.DragEventType{dragdrop.DragStarted, dragdrop.DragMoved, dragdrop.DragEnded}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	DragEventType.Subscribe(world, func(w donburi.World, e dragdrop.DragEvent) {
		count1++
	})
	DragEventType.Subscribe(world, func(w donburi.World, e dragdrop.DragEvent) {
		count2++
	})

	store.EmitEvent(dragdrop.DragEvent{Type: dragdrop.DragCancelled})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
