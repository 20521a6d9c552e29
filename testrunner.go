package glide

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// defaultSettleFrames bounds a "settle" step without an explicit frame count.
const defaultSettleFrames = 600

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action   string  `json:"action" yaml:"action"`
	Label    string  `json:"label,omitempty" yaml:"label,omitempty"`
	ID       int     `json:"id,omitempty" yaml:"id,omitempty"`
	X        float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y        float64 `json:"y,omitempty" yaml:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty" yaml:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty" yaml:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty" yaml:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty" yaml:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty" yaml:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty" yaml:"toDist,omitempty"`
	DeltaY   float64 `json:"deltaY,omitempty" yaml:"deltaY,omitempty"`
	Width    float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Frames   int     `json:"frames,omitempty" yaml:"frames,omitempty"`
}

// gestureScript is the top-level structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps" yaml:"steps"`
}

// Snapshot is the engine status recorded by a "snapshot" step.
type Snapshot struct {
	Label     string
	Frame     int
	Transform Transform
	State     GestureState
	Settled   bool
}

// ScriptRunner sequences injected input across frames of a Simulator and
// records snapshots along the way.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	settling  int
	done      bool
	snapshots []Snapshot
}

// LoadScript parses a gesture script. JSON documents (starting with '{') and
// YAML documents are both accepted.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script gestureScript
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &script); err != nil {
			return nil, fmt.Errorf("parse gesture script: %w", err)
		}
	} else if err := yaml.Unmarshal(trimmed, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "down", "move", "up", "drag", "pinch", "wheel", "resize",
		"zoomIn", "zoomOut", "wait", "settle", "snapshot":
		return true
	}
	return false
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Snapshots returns the snapshots recorded so far.
func (r *ScriptRunner) Snapshots() []Snapshot {
	return r.snapshots
}

// Run steps the script and advances the simulator until the script is done.
// It fails if the script needs more than maxFrames frames.
func (r *ScriptRunner) Run(s *Simulator, maxFrames int) error {
	for i := 0; i < maxFrames; i++ {
		r.Step(s)
		if r.done {
			return nil
		}
		s.Advance()
	}
	return fmt.Errorf("gesture script not finished after %d frames (step %d of %d)",
		maxFrames, r.cursor, len(r.steps))
}

// Step advances the runner by one frame. Call it once before each
// Simulator.Advance.
func (r *ScriptRunner) Step(s *Simulator) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if !s.Idle() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settling > 0 {
		if !s.Engine().Settled() {
			r.settling--
			return
		}
		r.settling = 0
	}

	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		if r.exec(s, st) {
			break
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.settling == 0 && s.Idle() {
		r.done = true
	}
}

// exec runs one step and reports whether it consumes frames.
func (r *ScriptRunner) exec(s *Simulator, st scriptStep) bool {
	id := PointerID(st.ID)
	switch st.Action {
	case "snapshot":
		e := s.Engine()
		r.snapshots = append(r.snapshots, Snapshot{
			Label:     st.Label,
			Frame:     s.Frame(),
			Transform: e.Transform(),
			State:     e.State(),
			Settled:   e.Settled(),
		})
		return false
	case "down":
		s.InjectDown(id, st.X, st.Y)
	case "move":
		s.InjectMove(id, st.X, st.Y)
	case "up":
		s.InjectUp(id, st.X, st.Y)
	case "drag":
		s.InjectDrag(id, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		s.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	case "wheel":
		s.InjectWheel(st.X, st.Y, st.DeltaY)
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "zoomIn":
		s.InjectZoomIn()
	case "zoomOut":
		s.InjectZoomOut()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = st.Frames
		if r.settling <= 0 {
			r.settling = defaultSettleFrames
		}
	}
	return true
}
