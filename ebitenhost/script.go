package ebitenhost

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/dragdrop"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Key    string  `json:"key,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptKeys = map[string]dragdrop.Key{
	"escape": dragdrop.KeyEscape,
	"enter":  dragdrop.KeyEnter,
	"space":  dragdrop.KeySpace,
}

// Script sequences injected input across ticks for automated drag-and-drop
// runs. Attach it with Input.SetScript.
//
//	{"steps": [
//		{"action": "drag", "fromX": 50, "fromY": 50, "toX": 350, "toY": 50, "frames": 10},
//		{"action": "wait", "frames": 5},
//		{"action": "press", "x": 60, "y": 60},
//		{"action": "key", "key": "escape"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "wait":
		case "key":
			if _, ok := scriptKeys[st.Key]; !ok {
				return nil, fmt.Errorf("parse input script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the input. Its steps run from Update, ahead
// of real input.
func (in *Input) SetScript(s *Script) {
	in.script = s
}

// Done reports whether every step has been executed and its input consumed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick.
func (s *Script) step(in *Input) {
	if s.done {
		return
	}
	// Wait for queued injections to drain before advancing.
	if len(in.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		in.InjectPress(st.X, st.Y)
	case "move":
		in.InjectMove(st.X, st.Y)
	case "release":
		in.InjectRelease(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		in.InjectKey(scriptKeys[st.Key])
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	}
}
