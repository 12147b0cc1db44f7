package ebitenhost

import (
	"testing"

	"github.com/phanxgames/dragdrop"
)

func drain(in *Input) int {
	n := 0
	for in.stepSynthetic() {
		n++
	}
	return n
}

func TestInjectDrag(t *testing.T) {
	d := dragdrop.NewDispatcher()
	got := recorder(d)
	in := NewInput(d)

	in.InjectDrag(50, 50, 350, 50, 4)
	if in.Pending() != 4 {
		t.Fatalf("pending = %d, want 4", in.Pending())
	}
	if n := drain(in); n != 4 {
		t.Fatalf("consumed %d frames, want 4", n)
	}

	sameKinds(t, *got,
		dragdrop.EventPointerDown,
		dragdrop.EventPointerMove,
		dragdrop.EventPointerMove,
		dragdrop.EventPointerMove,
		dragdrop.EventPointerUp,
	)
	wantX := []float64{50, 150, 250, 350, 350}
	for i, ev := range *got {
		if ev.X != wantX[i] || ev.Y != 50 {
			t.Errorf("event %d at (%v,%v), want (%v,50)", i, ev.X, ev.Y, wantX[i])
		}
	}
}

func TestInjectDrag_MinimumFrames(t *testing.T) {
	in := NewInput(dragdrop.NewDispatcher())
	in.InjectDrag(0, 0, 10, 10, 0)
	if in.Pending() != 2 {
		t.Errorf("pending = %d, want press and release only", in.Pending())
	}
}

func TestInjectKey_KeepsPointerState(t *testing.T) {
	d := dragdrop.NewDispatcher()
	got := recorder(d)
	in := NewInput(d)

	in.InjectPress(20, 20)
	in.InjectKey(dragdrop.KeyEscape)
	drain(in)

	sameKinds(t, *got, dragdrop.EventPointerDown, dragdrop.EventKeyDown)
	if !in.mouseDown {
		t.Error("key injection should not release the button")
	}
}

func TestInject_ScreenToWorld(t *testing.T) {
	d := dragdrop.NewDispatcher()
	got := recorder(d)
	in := NewInput(d)
	in.ScreenToWorld = func(x, y float64) (float64, float64) { return x + 100, y * 2 }

	in.InjectPress(10, 10)
	drain(in)

	sameKinds(t, *got, dragdrop.EventPointerDown)
	if ev := (*got)[0]; ev.X != 110 || ev.Y != 20 {
		t.Errorf("pointer down at (%v,%v), want (110,20)", ev.X, ev.Y)
	}
}

func TestInject_CancelsEngineDrag(t *testing.T) {
	d := dragdrop.NewDispatcher()
	store := &resultStore{}
	engine := dragdrop.NewEngine(dragdrop.Config{Input: d, Store: store})
	in := NewInput(d)
	d.On(dragdrop.EventPointerDown, func(ev *dragdrop.InputEvent) {
		_ = engine.StartDrag(dragdrop.DraggableItem{ID: "c1", Type: "card"}, "c1", "list-a", ev)
	})

	in.InjectPress(50, 50)
	in.InjectMove(80, 50)
	in.InjectKey(dragdrop.KeyEscape)
	drain(in)

	if engine.IsDragging() {
		t.Error("escape should cancel the drag")
	}
	if len(store.results) != 0 {
		t.Errorf("a cancelled drag must not produce a result, got %d", len(store.results))
	}
}
