// Package sim runs a willowxr interaction in a desktop window with
// Ebitengine. The mouse drives the right fingertip and the keyboard the
// left one, so the pinch interactions can be tried without a headset.
//
// Controls:
//
//	mouse move / wheel    right fingertip (wheel changes depth)
//	left mouse button     right pinch
//	W A S D / Q E         left fingertip (Q/E change depth)
//	space                 left pinch
//	1 / 2                 right select / squeeze
//	3 / 4                 left select / squeeze
//	F12                   screenshot
package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/willowxr"
)

// RunConfig configures the simulator window.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ScreenshotDir receives F12 and script snapshot captures. Defaults to
	// "screenshots".
	ScreenshotDir string
	// Camera is the viewer pose. Zero uses the demo default, standing 3m
	// back at eye height.
	Camera willowxr.Pose
	// FOV is the vertical field of view in degrees. Defaults to 50.
	FOV float64
}

const (
	defaultFOV           = 50
	defaultScreenshotDir = "screenshots"
)

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "willowxr"
	}
	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = 540
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	if c.FOV <= 0 {
		c.FOV = defaultFOV
	}
	if c.Camera.Position.Len() == 0 {
		c.Camera.Position[1] = 1.6
		c.Camera.Position[2] = 3
	}
	if c.Camera.Orientation.Len() == 0 {
		c.Camera.Orientation = mgl64.QuatIdent()
	}
	return c
}

// Game adapts an Interaction to ebiten.Game.
type Game struct {
	ix    *willowxr.Interaction
	hands *willowxr.SimulatedHands
	cfg   RunConfig
	view  viewport

	screenshotQueue []string
	drawBuf         []drawable
}

// NewGame creates the ebiten.Game for ix. Fingertips start in front of the
// camera at the depth of the demo props.
func NewGame(ix *willowxr.Interaction, hands *willowxr.SimulatedHands, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		ix:    ix,
		hands: hands,
		cfg:   cfg,
		view:  newViewport(cfg),
	}
	hands.SetFingertip(willowxr.HandLeft, g.view.unproject(float64(cfg.Width)*0.3, float64(cfg.Height)*0.5, cfg.Camera.Position[2]))
	hands.SetFingertip(willowxr.HandRight, g.view.unproject(float64(cfg.Width)*0.7, float64(cfg.Height)*0.5, cfg.Camera.Position[2]))
	prev := ix.OnSnapshot
	ix.OnSnapshot = func(label string) {
		g.Screenshot(label)
		if prev != nil {
			prev(label)
		}
	}
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.readInput()
	g.ix.Update()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	if g.cfg.ShowFPS {
		drawOverlay(screen, g.ix)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs ix until it is closed.
func Run(ix *willowxr.Interaction, hands *willowxr.SimulatedHands, cfg RunConfig) error {
	g := NewGame(ix, hands, cfg)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetTPS(ix.Config().TickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	return nil
}
