package touchinput

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"tap": true, "press": true, "move": true, "release": true,
	"drag": true, "hold": true, "cancel": true, "wait": true,
}

// ScriptRunner plays a JSON input script through an Injector, one step at a
// time. A step is only started once the samples of the previous one have
// drained. ScriptRunner is itself a Source: register it with
// TouchInput.AddSource in place of the injector.
type ScriptRunner struct {
	inj       *Injector
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script. If inj is nil a new Injector is
// created.
func LoadScript(data []byte, inj *Injector) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
		if !validPointerID(st.Pointer) {
			return nil, fmt.Errorf("parse input script: step %d: pointer %d out of range", i, st.Pointer)
		}
	}
	if inj == nil {
		inj = NewInjector()
	}
	return &ScriptRunner{inj: inj, steps: sc.Steps}, nil
}

// Injector returns the injector the script feeds.
func (r *ScriptRunner) Injector() *Injector {
	return r.inj
}

// Done reports whether every step has run and its samples were delivered.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// AppendSamples advances the script by one frame and returns the injector's
// samples for it.
func (r *ScriptRunner) AppendSamples(dst []PointerSample) []PointerSample {
	r.step()
	dst = r.inj.AppendSamples(dst)
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.inj.Pending() == 0 {
		r.done = true
	}
	return dst
}

func (r *ScriptRunner) step() {
	if r.done || r.inj.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		r.inj.InjectTap(st.Pointer, st.X, st.Y)
	case "press":
		r.inj.InjectPress(st.Pointer, st.X, st.Y)
	case "move":
		r.inj.InjectMove(st.Pointer, st.X, st.Y)
	case "release":
		r.inj.InjectRelease(st.Pointer, st.X, st.Y)
	case "drag":
		r.inj.InjectDrag(st.Pointer, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "hold":
		r.inj.InjectHold(st.Pointer, st.Frames)
	case "cancel":
		r.inj.InjectCancel(st.Pointer)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
