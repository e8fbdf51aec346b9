package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
)

// HandTracker is the hand-tracking source. Fingertip returns the world pose
// of the hand's index-finger tip joint and false when the joint is not
// tracked this frame.
type HandTracker interface {
	Fingertip(h Hand) (Pose, bool)
}

// HandMover is implemented by trackers whose joints can be set directly,
// such as SimulatedHands. Injected move events require it.
type HandMover interface {
	SetFingertip(h Hand, position mgl64.Vec3)
}

// SimulatedHands is a HandTracker whose fingertip poses are set by code:
// tests, the desktop simulator and script replays drive it.
type SimulatedHands struct {
	poses   [numHands]Pose
	tracked [numHands]bool
}

// NewSimulatedHands creates a tracker with both hands tracked at the origin.
func NewSimulatedHands() *SimulatedHands {
	s := &SimulatedHands{}
	for i := range s.poses {
		s.poses[i] = IdentityPose()
		s.tracked[i] = true
	}
	return s
}

// Fingertip implements HandTracker.
func (s *SimulatedHands) Fingertip(h Hand) (Pose, bool) {
	if !h.valid() || !s.tracked[h] {
		return Pose{}, false
	}
	return s.poses[h], true
}

// SetFingertip moves h's fingertip, keeping its orientation, and marks the
// hand as tracked.
func (s *SimulatedHands) SetFingertip(h Hand, position mgl64.Vec3) {
	if !h.valid() {
		return
	}
	s.poses[h].Position = position
	s.tracked[h] = true
}

// SetPose sets h's full fingertip pose and marks the hand as tracked.
func (s *SimulatedHands) SetPose(h Hand, p Pose) {
	if !h.valid() {
		return
	}
	s.poses[h] = p
	s.tracked[h] = true
}

// Lose marks h as untracked until its next Set call.
func (s *SimulatedHands) Lose(h Hand) {
	if h.valid() {
		s.tracked[h] = false
	}
}

// HandModelStyle selects how a hand is visualised.
type HandModelStyle uint8

const (
	HandModelBoxes HandModelStyle = iota
	HandModelSpheres
	HandModelMesh
	numHandModelStyles
)

func (m HandModelStyle) String() string {
	switch m {
	case HandModelBoxes:
		return "boxes"
	case HandModelSpheres:
		return "spheres"
	case HandModelMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// Next returns the style after m, wrapping around.
func (m HandModelStyle) Next() HandModelStyle {
	return (m + 1) % numHandModelStyles
}
