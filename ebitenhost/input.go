// Package ebitenhost drives a dragdrop engine from Ebitengine's input state.
//
// Call [Input.Update] once per tick, before the game's own logic, to turn
// mouse, touch and keyboard state into dragdrop input events. [Cursor]
// applies the engine's cursor affordance with ebiten.SetCursorShape.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/dragdrop"
)

// watchedKeys are the keys reported as EventKeyDown.
var watchedKeys = [...]struct {
	ebiten ebiten.Key
	key    dragdrop.Key
}{
	{ebiten.KeyEscape, dragdrop.KeyEscape},
	{ebiten.KeyEnter, dragdrop.KeyEnter},
	{ebiten.KeySpace, dragdrop.KeySpace},
}

// frame is one tick's worth of polled input, already in world coordinates.
type frame struct {
	cursorX, cursorY float64
	mouse            bool
	touches          []dragdrop.TouchPoint
	keys             []dragdrop.Key
}

// Input polls ebiten once per tick and dispatches the resulting events.
type Input struct {
	// ScreenToWorld converts screen coordinates before dispatch, typically
	// a camera transform. Nil leaves coordinates unchanged.
	ScreenToWorld func(x, y float64) (float64, float64)

	d         *dragdrop.Dispatcher
	mouseSeen bool
	mouseDown bool
	lastX     float64
	lastY     float64
	touches   []dragdrop.TouchPoint // active touches in arrival order
	touchBuf  []ebiten.TouchID

	injectQueue []syntheticEvent
	lastScreenX float64
	lastScreenY float64
	script      *Script
}

// NewInput creates an Input feeding d.
func NewInput(d *dragdrop.Dispatcher) *Input {
	return &Input{d: d}
}

func (in *Input) toWorld(x, y float64) (float64, float64) {
	if in.ScreenToWorld != nil {
		return in.ScreenToWorld(x, y)
	}
	return x, y
}

// Update polls ebiten's mouse, touch and keyboard state and dispatches the
// changes since the previous call. While a script runs or injected events are
// queued, they replace real input.
func (in *Input) Update() {
	if in.stepSynthetic() {
		return
	}
	var f frame
	mx, my := ebiten.CursorPosition()
	in.lastScreenX, in.lastScreenY = float64(mx), float64(my)
	f.cursorX, f.cursorY = in.toWorld(in.lastScreenX, in.lastScreenY)
	f.mouse = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])
	for _, tid := range in.touchBuf {
		tx, ty := ebiten.TouchPosition(tid)
		wx, wy := in.toWorld(float64(tx), float64(ty))
		f.touches = append(f.touches, dragdrop.TouchPoint{ID: int(tid), X: wx, Y: wy})
	}

	for _, k := range watchedKeys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			f.keys = append(f.keys, k.key)
		}
	}
	in.process(f)
}

// stepSynthetic advances the attached script and consumes one injected event.
// It reports whether real input should be skipped this tick.
func (in *Input) stepSynthetic() bool {
	if in.script != nil {
		in.script.step(in)
	}
	return in.processInjected()
}

// process diffs f against the previous frame and dispatches events in the
// order down, move, up, then keys.
func (in *Input) process(f frame) {
	in.processMouse(f)
	in.processTouches(f)
	for _, k := range f.keys {
		in.d.Dispatch(&dragdrop.InputEvent{Kind: dragdrop.EventKeyDown, Key: k})
	}
}

func (in *Input) processMouse(f frame) {
	x, y := f.cursorX, f.cursorY
	if f.mouse && !in.mouseDown {
		in.d.Dispatch(&dragdrop.InputEvent{Kind: dragdrop.EventPointerDown, X: x, Y: y})
	}
	if in.mouseSeen && (x != in.lastX || y != in.lastY) {
		in.d.Dispatch(&dragdrop.InputEvent{Kind: dragdrop.EventPointerMove, X: x, Y: y})
	}
	if !f.mouse && in.mouseDown {
		in.d.Dispatch(&dragdrop.InputEvent{Kind: dragdrop.EventPointerUp, X: x, Y: y})
	}
	in.mouseSeen = true
	in.mouseDown = f.mouse
	in.lastX, in.lastY = x, y
}

func (in *Input) processTouches(f frame) {
	// Carry over surviving touches in arrival order, then append new ones.
	next := make([]dragdrop.TouchPoint, 0, len(f.touches))
	var ended []dragdrop.TouchPoint
	for _, prev := range in.touches {
		if cur, ok := findTouch(f.touches, prev.ID); ok {
			next = append(next, cur)
		} else {
			ended = append(ended, prev)
		}
	}
	var started []dragdrop.TouchPoint
	for _, cur := range f.touches {
		if _, ok := findTouch(in.touches, cur.ID); !ok {
			next = append(next, cur)
			started = append(started, cur)
		}
	}
	prevTouches := in.touches
	in.touches = next

	for _, p := range started {
		in.d.Dispatch(&dragdrop.InputEvent{
			Kind:           dragdrop.EventTouchStart,
			Touches:        append([]dragdrop.TouchPoint(nil), next...),
			TargetTouches:  []dragdrop.TouchPoint{p},
			ChangedTouches: []dragdrop.TouchPoint{p},
		})
	}
	for _, cur := range next {
		prev, ok := findTouch(prevTouches, cur.ID)
		if !ok || (prev.X == cur.X && prev.Y == cur.Y) {
			continue
		}
		in.d.Dispatch(&dragdrop.InputEvent{
			Kind:           dragdrop.EventTouchMove,
			Touches:        append([]dragdrop.TouchPoint(nil), next...),
			TargetTouches:  []dragdrop.TouchPoint{cur},
			ChangedTouches: []dragdrop.TouchPoint{cur},
		})
	}
	for _, p := range ended {
		in.d.Dispatch(&dragdrop.InputEvent{
			Kind:           dragdrop.EventTouchEnd,
			Touches:        append([]dragdrop.TouchPoint(nil), next...),
			ChangedTouches: []dragdrop.TouchPoint{p},
		})
	}
}

func findTouch(s []dragdrop.TouchPoint, id int) (dragdrop.TouchPoint, bool) {
	for _, p := range s {
		if p.ID == id {
			return p, true
		}
	}
	return dragdrop.TouchPoint{}, false
}
