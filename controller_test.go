package willowxr

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// runTweens ticks ix until the default 0.25s action has finished.
func runTweens(ix *Interaction) {
	for i := 0; i < 4; i++ {
		ix.Tick(0.0625)
	}
}

func TestControllerSelectRotates(t *testing.T) {
	r := newRig(t)
	target := NewModel("glider")
	r.scene.AddToWorld(target)
	r.ix.SetActionTarget(target)

	r.ix.HandleController(ControllerEvent{Hand: HandRight, Kind: SelectStart})
	if r.ix.ActiveTweens() != 1 {
		t.Fatalf("ActiveTweens = %d, want 1", r.ix.ActiveTweens())
	}
	runTweens(r.ix)
	if r.ix.ActiveTweens() != 0 {
		t.Errorf("ActiveTweens = %d, want 0 after duration", r.ix.ActiveTweens())
	}
	c := math.Sqrt2 / 2
	assertVecApprox(t, "right select", target.Rotation.Rotate(mgl64.Vec3{1, 0, 0}), mgl64.Vec3{c, 0, -c})

	r.ix.HandleController(ControllerEvent{Hand: HandLeft, Kind: SelectStart})
	runTweens(r.ix)
	assertVecApprox(t, "left select undoes", target.Rotation.Rotate(mgl64.Vec3{1, 0, 0}), mgl64.Vec3{1, 0, 0})
}

func TestControllerSqueezeLifts(t *testing.T) {
	r := newRig(t)
	target := NewModel("glider")
	target.Position = mgl64.Vec3{-0.5, 0.5, 1}
	r.scene.AddToWorld(target)
	r.ix.SetActionTarget(target)

	r.ix.HandleController(ControllerEvent{Hand: HandRight, Kind: SqueezeStart})
	runTweens(r.ix)
	assertVecApprox(t, "lifted", target.Position, mgl64.Vec3{-0.5, 0.6, 1})

	r.ix.HandleController(ControllerEvent{Hand: HandLeft, Kind: SqueezeStart})
	r.ix.HandleController(ControllerEvent{Hand: HandLeft, Kind: SqueezeStart})
	runTweens(r.ix)
	assertVecApprox(t, "lowered", target.Position, mgl64.Vec3{-0.5, 0.4, 1})
}

func TestControllerEmitsEvents(t *testing.T) {
	r := newRig(t)
	target := NewModel("glider")
	r.scene.AddToWorld(target)
	r.ix.SetActionTarget(target)

	r.ix.HandleController(ControllerEvent{Hand: HandLeft, Kind: SelectStart})
	r.ix.HandleController(ControllerEvent{Hand: HandRight, Kind: SqueezeStart})
	got := r.store.types()
	if len(got) != 2 || got[0] != EventSelect || got[1] != EventSqueeze {
		t.Errorf("events = %v, want [select squeeze]", got)
	}
}

func TestControllerWithoutTarget(t *testing.T) {
	r := newRig(t)
	r.ix.HandleController(ControllerEvent{Hand: HandRight, Kind: SelectStart})
	if r.ix.ActiveTweens() != 0 || len(r.store.events) != 0 {
		t.Error("event without a target should be dropped")
	}

	target := NewModel("glider")
	r.ix.SetActionTarget(target)
	target.Dispose()
	r.ix.HandleController(ControllerEvent{Hand: HandRight, Kind: SqueezeStart})
	if r.ix.ActiveTweens() != 0 {
		t.Error("disposed target should be ignored")
	}
}

func TestControllerViaQueue(t *testing.T) {
	r := newRig(t)
	target := NewModel("glider")
	r.scene.AddToWorld(target)
	r.ix.SetActionTarget(target)
	if r.ix.ActionTarget() != target {
		t.Fatal("ActionTarget mismatch")
	}

	r.ix.Push(ControllerEvent{Hand: HandRight, Kind: SqueezeStart})
	r.ix.Process()
	if r.ix.ActiveTweens() != 1 {
		t.Errorf("ActiveTweens = %d, want 1", r.ix.ActiveTweens())
	}
}

func TestControllerCustomSteps(t *testing.T) {
	s := NewScene()
	ix := NewInteraction(s, NewSimulatedHands(), Config{RotateStep: 90, LiftStep: 1, ActionDuration: 0.5})
	target := NewModel("glider")
	s.AddToWorld(target)
	ix.SetActionTarget(target)

	ix.HandleController(ControllerEvent{Hand: HandRight, Kind: SelectStart})
	ix.HandleController(ControllerEvent{Hand: HandRight, Kind: SqueezeStart})
	ix.Tick(0.25)
	ix.Tick(0.25)
	assertVecApprox(t, "rotated", target.Rotation.Rotate(mgl64.Vec3{1, 0, 0}), mgl64.Vec3{0, 0, -1})
	// Squeeze runs along the target's own Y, which a yaw leaves unchanged.
	assertVecApprox(t, "lifted", target.Position, mgl64.Vec3{0, 1, 0})
}
