package dragdrop

import "testing"

func TestDispatcher_OnAndRemove(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	h1 := d.On(EventPointerMove, func(*InputEvent) { calls = append(calls, "first") })
	d.On(EventPointerMove, func(*InputEvent) { calls = append(calls, "second") })
	d.On(EventPointerUp, func(*InputEvent) { calls = append(calls, "up") })

	d.Dispatch(&InputEvent{Kind: EventPointerMove})
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("calls = %v", calls)
	}

	h1.Remove()
	h1.Remove() // second remove is a no-op
	calls = nil
	d.Dispatch(&InputEvent{Kind: EventPointerMove})
	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("after remove calls = %v", calls)
	}
	if d.Len(EventPointerMove) != 1 || d.Len(EventPointerUp) != 1 {
		t.Errorf("len move/up = %d/%d", d.Len(EventPointerMove), d.Len(EventPointerUp))
	}
}

func TestDispatcher_NoListeners(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(&InputEvent{Kind: EventKeyDown}) // must not panic
	CallbackHandle{}.Remove()
}

func TestDispatcher_RemoveDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var calls int
	var h CallbackHandle
	h = d.On(EventPointerUp, func(*InputEvent) {
		calls++
		h.Remove()
	})
	d.On(EventPointerUp, func(*InputEvent) { calls++ })

	d.Dispatch(&InputEvent{Kind: EventPointerUp})
	if calls != 2 {
		t.Errorf("both listeners should run in the dispatch that removed one, calls = %d", calls)
	}
	calls = 0
	d.Dispatch(&InputEvent{Kind: EventPointerUp})
	if calls != 1 {
		t.Errorf("removed listener still fired, calls = %d", calls)
	}
}

func TestDispatcher_AddDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var added int
	d.On(EventPointerDown, func(*InputEvent) {
		d.On(EventPointerDown, func(*InputEvent) { added++ })
	})
	d.Dispatch(&InputEvent{Kind: EventPointerDown})
	if added != 0 {
		t.Error("listener added during dispatch should not fire in the same dispatch")
	}
	d.Dispatch(&InputEvent{Kind: EventPointerDown})
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
}
