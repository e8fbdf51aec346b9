package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/willowxr"
)

const (
	// keyboardSpeed is how far the left fingertip moves per second, in meters.
	keyboardSpeed = 0.8
	// wheelStep is the depth change per wheel notch, in meters.
	wheelStep = 0.05
	minDepth  = 0.3
)

// keyAction binds a key press to a controller button.
type keyAction struct {
	key  ebiten.Key
	hand willowxr.Hand
	kind willowxr.ControllerKind
}

var controllerKeys = []keyAction{
	{ebiten.Key1, willowxr.HandRight, willowxr.SelectStart},
	{ebiten.Key2, willowxr.HandRight, willowxr.SqueezeStart},
	{ebiten.Key3, willowxr.HandLeft, willowxr.SelectStart},
	{ebiten.Key4, willowxr.HandLeft, willowxr.SqueezeStart},
}

// readInput turns this frame's mouse and keyboard state into fingertip
// moves and queued pinch/controller messages.
func (g *Game) readInput() {
	g.readRightHand()
	g.readLeftHand()

	for _, ka := range controllerKeys {
		if inpututil.IsKeyJustPressed(ka.key) {
			g.ix.Push(willowxr.ControllerEvent{Hand: ka.hand, Kind: ka.kind})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}
}

// readRightHand maps the cursor to the right fingertip at its current depth.
func (g *Game) readRightHand() {
	pose, _ := g.hands.Fingertip(willowxr.HandRight)
	depth := g.view.depthOf(pose.Position)
	_, wy := ebiten.Wheel()
	depth -= wy * wheelStep
	if depth < minDepth {
		depth = minDepth
	}
	mx, my := ebiten.CursorPosition()
	g.hands.SetFingertip(willowxr.HandRight, g.view.unproject(float64(mx), float64(my), depth))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ix.Push(willowxr.PinchEvent{Hand: willowxr.HandRight, Kind: willowxr.PinchStart})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ix.Push(willowxr.PinchEvent{Hand: willowxr.HandRight, Kind: willowxr.PinchEnd})
	}
}

// readLeftHand moves the left fingertip with WASD/QE in camera space.
func (g *Game) readLeftHand() {
	step := keyboardSpeed / float64(ebiten.TPS())
	var d mgl64.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		d[0] -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		d[0] += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		d[1] += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		d[1] -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		d[2] -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		d[2] += step
	}
	if d != (mgl64.Vec3{}) {
		pose, _ := g.hands.Fingertip(willowxr.HandLeft)
		g.hands.SetFingertip(willowxr.HandLeft, pose.Position.Add(g.view.rot.Rotate(d)))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ix.Push(willowxr.PinchEvent{Hand: willowxr.HandLeft, Kind: willowxr.PinchStart})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		g.ix.Push(willowxr.PinchEvent{Hand: willowxr.HandLeft, Kind: willowxr.PinchEnd})
	}
}
