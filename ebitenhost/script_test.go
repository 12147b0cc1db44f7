package ebitenhost

import (
	"testing"

	"github.com/phanxgames/dragdrop"
)

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"steps": [`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "fling"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "tab"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScript_Sequence(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 100, "toY": 0, "frames": 3},
		{"action": "wait", "frames": 2},
		{"action": "key", "key": "escape"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	d := dragdrop.NewDispatcher()
	got := recorder(d)
	in := NewInput(d)
	in.SetScript(s)

	ticks := 0
	for !s.Done() && ticks < 20 {
		in.stepSynthetic()
		ticks++
	}
	if !s.Done() {
		t.Fatal("script did not finish")
	}
	// 3 drag frames, 2 wait frames, 1 key frame, 1 frame to observe the end.
	if ticks != 7 {
		t.Errorf("ticks = %d, want 7", ticks)
	}
	sameKinds(t, *got,
		dragdrop.EventPointerDown,
		dragdrop.EventPointerMove,
		dragdrop.EventPointerMove,
		dragdrop.EventPointerUp,
		dragdrop.EventKeyDown,
	)
}

func TestScript_DrivesEngine(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "x": 50, "y": 50},
		{"action": "move", "x": 200, "y": 50},
		{"action": "move", "x": 350, "y": 50},
		{"action": "release", "x": 350, "y": 50}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	d := dragdrop.NewDispatcher()
	store := &resultStore{}
	engine := dragdrop.NewEngine(dragdrop.Config{Input: d, Store: store})
	if err := engine.RegisterDropContainer("list-b", dragdrop.StaticBounds{X: 300, Width: 300, Height: 300}, []string{"card"}); err != nil {
		t.Fatal(err)
	}
	d.On(dragdrop.EventPointerDown, func(ev *dragdrop.InputEvent) {
		_ = engine.StartDrag(dragdrop.DraggableItem{ID: "c1", Type: "card"}, "c1", "list-a", ev)
	})

	in := NewInput(d)
	in.SetScript(s)
	for i := 0; i < 10 && !s.Done(); i++ {
		in.stepSynthetic()
	}

	if len(store.results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(store.results))
	}
	if res := store.results[0]; !res.IsMoved || res.Destination == nil || res.Destination.ID != "list-b" {
		t.Errorf("result = %+v", res)
	}
}
