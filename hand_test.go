package willowxr

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSimulatedHandsDefaults(t *testing.T) {
	s := NewSimulatedHands()
	for _, h := range []Hand{HandLeft, HandRight} {
		p, ok := s.Fingertip(h)
		if !ok {
			t.Errorf("%s should start tracked", h)
		}
		if p != IdentityPose() {
			t.Errorf("%s pose = %+v, want identity", h, p)
		}
	}
	if _, ok := s.Fingertip(Hand(3)); ok {
		t.Error("invalid hand should be untracked")
	}
}

func TestSimulatedHandsLoseAndRecover(t *testing.T) {
	s := NewSimulatedHands()
	s.Lose(HandLeft)
	if _, ok := s.Fingertip(HandLeft); ok {
		t.Error("left should be untracked")
	}
	if _, ok := s.Fingertip(HandRight); !ok {
		t.Error("right should be unaffected")
	}
	s.SetFingertip(HandLeft, mgl64.Vec3{1, 0, 0})
	p, ok := s.Fingertip(HandLeft)
	if !ok {
		t.Fatal("SetFingertip should restore tracking")
	}
	assertVec(t, "left", p.Position, mgl64.Vec3{1, 0, 0})
}

func TestSimulatedHandsSetPose(t *testing.T) {
	s := NewSimulatedHands()
	q := mgl64.QuatRotate(1, mgl64.Vec3{1, 0, 0})
	s.SetPose(HandRight, Pose{Position: mgl64.Vec3{0, 2, 0}, Orientation: q})
	s.SetFingertip(HandRight, mgl64.Vec3{0, 3, 0})

	p, _ := s.Fingertip(HandRight)
	if p.Orientation != q {
		t.Error("SetFingertip should keep orientation")
	}
	assertVec(t, "right", p.Position, mgl64.Vec3{0, 3, 0})
}

func TestHandModelStyleCycle(t *testing.T) {
	m := HandModelBoxes
	want := []HandModelStyle{HandModelSpheres, HandModelMesh, HandModelBoxes}
	for _, w := range want {
		m = m.Next()
		if m != w {
			t.Fatalf("Next = %v, want %v", m, w)
		}
	}
}

func TestZeroOrientationTreatedAsIdentity(t *testing.T) {
	s := NewScene()
	hands := NewSimulatedHands()
	ix := NewInteraction(s, hands, Config{})
	hands.SetPose(HandLeft, Pose{Position: mgl64.Vec3{0, 1, 0}})

	ix.HandlePinch(PinchEvent{Hand: HandLeft, Kind: PinchStart})
	obj := ix.Registry().Objects()[0]
	if obj.Node.Rotation != mgl64.QuatIdent() {
		t.Errorf("spawn rotation = %v, want identity", obj.Node.Rotation)
	}
}
