package willowxr

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Hand   string  `json:"hand,omitempty"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Z      float64 `json:"z,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// ObjectSnapshot is the recorded state of one spawned object.
type ObjectSnapshot struct {
	ID       uint32     `json:"id"`
	Position [3]float64 `json:"position"`
	Scale    float64    `json:"scale"`
	HeldBy   string     `json:"heldBy"`
}

// Snapshot is the interaction state recorded by a "snapshot" step.
type Snapshot struct {
	Label   string           `json:"label"`
	Frame   uint64           `json:"frame"`
	Objects []ObjectSnapshot `json:"objects"`
	Left    uint32           `json:"left,omitempty"`
	Right   uint32           `json:"right,omitempty"`
	Scaling bool             `json:"scaling"`
}

// TestRunner sequences injected hand events and state snapshots across
// frames for scripted interaction tests. Attach to an Interaction via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	snapshots []Snapshot
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an Interaction via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "move", "pinchstart", "pinchend", "pinch", "select", "squeeze":
		if _, ok := ParseHand(st.Hand); !ok {
			return fmt.Errorf("%s: unknown hand %q", st.Action, st.Hand)
		}
	case "wait", "snapshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetTestRunner attaches a TestRunner. The runner's step method is called
// from Update before injected input is consumed each frame.
func (ix *Interaction) SetTestRunner(runner *TestRunner) {
	ix.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Snapshots returns the states recorded by snapshot steps so far.
func (r *TestRunner) Snapshots() []Snapshot {
	return r.snapshots
}

// step advances the test runner by one frame. Called from Interaction.Update.
func (r *TestRunner) step(ix *Interaction) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(ix.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	hand, _ := ParseHand(st.Hand)

	switch st.Action {
	case "move":
		ix.InjectMoveTo(hand, mgl64.Vec3{st.X, st.Y, st.Z}, st.Frames)
	case "pinchstart":
		ix.InjectPinchStart(hand)
	case "pinchend":
		ix.InjectPinchEnd(hand)
	case "pinch":
		ix.InjectPinch(hand)
	case "select":
		ix.InjectController(hand, SelectStart)
	case "squeeze":
		ix.InjectController(hand, SqueezeStart)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		r.snapshots = append(r.snapshots, ix.Snapshot(st.Label))
		if ix.OnSnapshot != nil {
			ix.OnSnapshot(st.Label)
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(ix.injectQueue) == 0 {
		r.done = true
	}
}

// Snapshot records the current interaction state under label.
func (ix *Interaction) Snapshot(label string) Snapshot {
	snap := Snapshot{
		Label:   label,
		Frame:   ix.scene.frame,
		Scaling: ix.scaler.Active(),
		Objects: make([]ObjectSnapshot, 0, ix.registry.Len()),
	}
	for _, o := range ix.registry.objects {
		p := o.Position()
		snap.Objects = append(snap.Objects, ObjectSnapshot{
			ID:       o.ID,
			Position: [3]float64{p[0], p[1], p[2]},
			Scale:    o.Scale(),
			HeldBy:   o.heldBy.String(),
		})
	}
	if o := ix.controllers[HandLeft].held; o != nil {
		snap.Left = o.ID
	}
	if o := ix.controllers[HandRight].held; o != nil {
		snap.Right = o.ID
	}
	return snap
}
