package willowxr

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// Hand identifies one of the two tracked hands.
type Hand uint8

const (
	HandLeft  Hand = iota // spawner and scaler
	HandRight             // primary grabber
)

// numHands is the size of every per-hand array.
const numHands = 2

// String returns "left" or "right".
func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	default:
		return "unknown"
	}
}

// Other returns the opposite hand.
func (h Hand) Other() Hand {
	if h == HandLeft {
		return HandRight
	}
	return HandLeft
}

// valid reports whether h indexes a per-hand array.
func (h Hand) valid() bool {
	return h < numHands
}

// ParseHand converts "left"/"right" (or "l"/"r") to a Hand.
func ParseHand(s string) (Hand, bool) {
	switch s {
	case "left", "l", "L", "Left":
		return HandLeft, true
	case "right", "r", "R", "Right":
		return HandRight, true
	}
	return 0, false
}

// PinchKind distinguishes the two discrete pinch gesture events.
type PinchKind uint8

const (
	PinchStart PinchKind = iota // index finger touched the thumb
	PinchEnd                    // contact released
)

func (k PinchKind) String() string {
	if k == PinchStart {
		return "pinchstart"
	}
	return "pinchend"
}

// Pose is a world-space position and orientation.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// IdentityPose returns a pose at the origin with no rotation.
func IdentityPose() Pose {
	return Pose{Orientation: mgl64.QuatIdent()}
}

// NodeType distinguishes what a Node represents.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeAnchor                    // follows a tracked joint; never rendered
	NodeTypeBox                       // cube with edge length Size
	NodeTypeSphere                    // sphere with radius Size
	NodeTypeModel                     // loaded asset (opaque to the core)
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeAnchor:
		return "anchor"
	case NodeTypeBox:
		return "box"
	case NodeTypeSphere:
		return "sphere"
	case NodeTypeModel:
		return "model"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event forwarded to an EntityStore.
type EventType uint8

const (
	EventSpawn      EventType = iota // a new object was added to the registry
	EventGrab                        // the right hand took ownership of an object
	EventRelease                     // a hand let go of an object
	EventScaleStart                  // a two-hand scaling session began
	EventScale                       // the scaling session applied a new scale
	EventScaleEnd                    // the scaling session ended
	EventSelect                      // controller select (trigger) pressed
	EventSqueeze                     // controller squeeze (grip) pressed

	numEventTypes
)

func (e EventType) String() string {
	switch e {
	case EventSpawn:
		return "spawn"
	case EventGrab:
		return "grab"
	case EventRelease:
		return "release"
	case EventScaleStart:
		return "scalestart"
	case EventScale:
		return "scale"
	case EventScaleEnd:
		return "scaleend"
	case EventSelect:
		return "select"
	case EventSqueeze:
		return "squeeze"
	default:
		return "unknown"
	}
}

// finiteVec reports whether every component of v is a finite number.
// Missing joint data shows up as NaN from some trackers.
func finiteVec(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
