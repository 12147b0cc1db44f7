package ebitenhost

import "github.com/phanxgames/dragdrop"

// syntheticEvent is one injected frame of pointer or key input, in screen
// coordinates like real cursor input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	key     dragdrop.Key
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each injected event replaces real mouse and keyboard input for one Update.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a button release at the given screen coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectKey queues a key press at the last known cursor position, with the
// button state unchanged.
func (in *Input) InjectKey(key dragdrop.Key) {
	x, y, pressed := in.lastScreenX, in.lastScreenY, in.mouseDown
	if n := len(in.injectQueue); n > 0 {
		last := in.injectQueue[n-1]
		x, y, pressed = last.x, last.y, last.pressed
	}
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: pressed, key: key})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// frames Updates; the minimum is 2.
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjected pops one injected event and processes it as this frame's
// pointer and key input. It reports whether an event was consumed.
func (in *Input) processInjected() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.lastScreenX, in.lastScreenY = evt.x, evt.y
	var f frame
	f.cursorX, f.cursorY = in.toWorld(evt.x, evt.y)
	f.mouse = evt.pressed
	f.touches = in.touches
	if evt.key != dragdrop.KeyUnknown {
		f.keys = []dragdrop.Key{evt.key}
	}
	in.process(f)
	return true
}
