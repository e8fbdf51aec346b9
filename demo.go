package willowxr

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"
)

// GliderAsset is the asset name the demo scene loads for the glider.
const GliderAsset = "glider.glb"

// Demo holds the fixed props of the demo scene.
type Demo struct {
	Box    *Node
	Sphere *Node
	// Glider is nil until its asset load has been applied by Scene.Update.
	Glider *Node
}

// BuildDemo populates ix's scene with a spinning box at the origin, a
// sphere to its right and the glider model, which becomes the controller
// action target once loaded.
func BuildDemo(ctx context.Context, ix *Interaction, loader AssetLoader) *Demo {
	d := &Demo{}
	scene := ix.Scene()

	d.Box = NewBox("box", 0.5, Color{R: 1, A: 1})
	spinX := mgl64.QuatRotate(0.005, mgl64.Vec3{1, 0, 0})
	spinY := mgl64.QuatRotate(0.01, mgl64.Vec3{0, 1, 0})
	d.Box.OnUpdate = func(dt float64) {
		d.Box.SetRotation(d.Box.Rotation.Mul(spinX).Mul(spinY).Normalize())
	}
	scene.AddToWorld(d.Box)

	d.Sphere = NewSphere("sphere", 0.7, Color{R: 1, G: 1, A: 1})
	d.Sphere.Position = mgl64.Vec3{1.5, 0, 0}
	scene.AddToWorld(d.Sphere)

	scene.LoadAsset(ctx, loader, GliderAsset, mgl64.Vec3{-0.5, 0.5, 1}, func(n *Node) {
		n.SetUniformScale(5)
		d.Glider = n
		ix.SetActionTarget(n)
	})
	return d
}
