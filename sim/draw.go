package sim

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/willowxr"
)

const (
	// modelRadius is the on-screen size of an opaque model, in world units
	// before the node's scale.
	modelRadius = 0.05
	// tipRadius is the drawn size of a fingertip, in world units.
	tipRadius = 0.015
)

var (
	backgroundColor = color.RGBA{0x50, 0x50, 0x50, 0xff}
	heldOutline     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	idleTipColor    = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	pinchTipColor   = color.RGBA{0x40, 0xff, 0x80, 0xff}
)

// drawable is one projected node, sorted back to front.
type drawable struct {
	node   *willowxr.Node
	sx, sy float64
	radius float64 // pixels
	depth  float64
}

// toRGBA converts a straight-alpha Color to a premultiplied color.RGBA.
func toRGBA(c willowxr.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// collect walks the tree and appends every visible node in front of the
// camera, then sorts far to near.
func (g *Game) collect(n *willowxr.Node, buf []drawable) []drawable {
	if !n.Visible {
		return buf
	}
	if n.Type != willowxr.NodeTypeContainer && n.Type != willowxr.NodeTypeAnchor {
		m := n.CachedWorldMatrix()
		pos := m.Col(3).Vec3()
		scale := m.Col(0).Vec3().Len()
		if sx, sy, depth, ok := g.view.project(pos); ok {
			size := n.Size
			switch n.Type {
			case willowxr.NodeTypeBox:
				size = n.Size / 2
			case willowxr.NodeTypeModel:
				size = modelRadius
			}
			buf = append(buf, drawable{
				node:   n,
				sx:     sx,
				sy:     sy,
				radius: g.view.projectRadius(size*scale, depth),
				depth:  depth,
			})
		}
	}
	for _, child := range n.Children() {
		buf = g.collect(child, buf)
	}
	return buf
}

func sortFarToNear(ds []drawable) {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].depth > ds[j].depth
	})
}

// drawScene renders every node plus the two fingertips.
func (g *Game) drawScene(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawBuf = g.collect(g.ix.Scene().World(), g.drawBuf[:0])
	sortFarToNear(g.drawBuf)
	for i := range g.drawBuf {
		drawNode(screen, &g.drawBuf[i])
	}

	for h := willowxr.HandLeft; h <= willowxr.HandRight; h++ {
		pose, ok := g.hands.Fingertip(h)
		if !ok {
			continue
		}
		sx, sy, depth, ok := g.view.project(pose.Position)
		if !ok {
			continue
		}
		clr := idleTipColor
		if g.ix.Controller(h).Pinching() {
			clr = pinchTipColor
		}
		r := float32(g.view.projectRadius(tipRadius, depth))
		drawTip(screen, float32(sx), float32(sy), r, clr, g.ix.HandModel(h))
		ebitenutil.DebugPrintAt(screen, h.String(), int(sx)+int(r)+2, int(sy)-8)
	}
}

func drawNode(screen *ebiten.Image, d *drawable) {
	x, y, r := float32(d.sx), float32(d.sy), float32(d.radius)
	clr := toRGBA(d.node.Color)
	switch d.node.Type {
	case willowxr.NodeTypeBox:
		vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, clr, true)
	case willowxr.NodeTypeSphere:
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	case willowxr.NodeTypeModel:
		vector.StrokeLine(screen, x-2*r, y, x+2*r, y, 2, clr, true)
		vector.StrokeLine(screen, x, y-r/2, x, y+r/2, 2, clr, true)
		ebitenutil.DebugPrintAt(screen, d.node.Name, int(x+2*r)+2, int(y)-8)
	default:
		return
	}
	if obj, ok := d.node.UserData.(*willowxr.SpawnedObject); ok && obj.HeldBy() != 0 {
		vector.StrokeCircle(screen, x, y, r+2, 1.5, heldOutline, true)
	}
}

// drawTip draws a fingertip in the hand's current model style.
func drawTip(screen *ebiten.Image, x, y, r float32, clr color.RGBA, style willowxr.HandModelStyle) {
	switch style {
	case willowxr.HandModelBoxes:
		vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, clr, true)
	case willowxr.HandModelSpheres:
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	default:
		vector.StrokeCircle(screen, x, y, r, 2, clr, true)
	}
}

// drawOverlay prints frame rate and interaction state in the corner.
func drawOverlay(screen *ebiten.Image, ix *willowxr.Interaction) {
	status := "scaling: off"
	if sess, ok := ix.Scaler().Session(); ok {
		status = fmt.Sprintf("scaling: object %d at %.2f", sess.Object.ID, sess.Object.Scale())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nobjects: %d\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), ix.Registry().Len(), status))
}
