package willowxr

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrSessionActive is returned by Start while another session runs.
	ErrSessionActive = errors.New("willowxr: scaling session already active")
	// ErrDegenerateScaling is returned by Start when the hands are coincident
	// (or the distance is not a finite number), which would make the scale
	// ratio undefined.
	ErrDegenerateScaling = errors.New("willowxr: degenerate scaling geometry")
	// ErrNilObject is returned by Start without an object.
	ErrNilObject = errors.New("willowxr: nil object")
)

// ScalingSession is the state of an active two-hand scale.
type ScalingSession struct {
	Object          *SpawnedObject
	InitialScale    float64
	InitialDistance float64
}

// TwoHandScaler runs at most one ScalingSession at a time.
type TwoHandScaler struct {
	active  bool
	session ScalingSession

	// MinScale clamps the applied scale from below when positive. Zero
	// applies the raw value, which can reach zero or go negative when the
	// hands are brought close together.
	MinScale float64
}

// Start begins a session on obj. It fails without side effects when a
// session is already active or initialDistance is zero or not finite.
func (s *TwoHandScaler) Start(obj *SpawnedObject, initialScale, initialDistance float64) error {
	if s.active {
		return ErrSessionActive
	}
	if obj == nil {
		return ErrNilObject
	}
	if initialDistance == 0 || math.IsNaN(initialDistance) || math.IsInf(initialDistance, 0) {
		return ErrDegenerateScaling
	}
	s.session = ScalingSession{
		Object:          obj,
		InitialScale:    initialScale,
		InitialDistance: initialDistance,
	}
	s.active = true
	return nil
}

// Update recomputes the held object's scale from the current fingertip
// positions and applies it to all three axes:
//
//	newScale = initialScale + currentDistance/initialDistance - 1
//
// Returns the applied scale and true, or false when no session is active or
// a fingertip position is missing.
func (s *TwoHandScaler) Update(left, right mgl64.Vec3) (float64, bool) {
	if !s.active {
		return 0, false
	}
	if !finiteVec(left) || !finiteVec(right) {
		return 0, false
	}
	dist := left.Sub(right).Len()
	scale := s.session.InitialScale + dist/s.session.InitialDistance - 1
	if s.MinScale > 0 && scale < s.MinScale {
		scale = s.MinScale
	}
	s.session.Object.Node.SetUniformScale(scale)
	return scale, true
}

// Stop ends the session. The object keeps its last applied scale.
func (s *TwoHandScaler) Stop() {
	s.active = false
	s.session = ScalingSession{}
}

// Active reports whether a session is running.
func (s *TwoHandScaler) Active() bool {
	return s.active
}

// Session returns the running session, if any.
func (s *TwoHandScaler) Session() (ScalingSession, bool) {
	return s.session, s.active
}
