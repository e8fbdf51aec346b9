package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a scalar from 0 to a target and hands each frame's
// increment to an apply function. Applying increments rather than absolute
// values lets several groups act on the same node at once. If the target
// node is disposed, the group stops immediately.
type TweenGroup struct {
	tween  *gween.Tween
	prev   float64
	apply  func(step float64)
	target *Node
	Done   bool
}

// Update advances the tween by dt seconds and applies the change since the
// previous frame.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	val, finished := g.tween.Update(dt)
	cur := float64(val)
	g.apply(cur - g.prev)
	g.prev = cur
	g.Done = finished
	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenTranslate moves node by delta, expressed in the node's local axes at
// each step (like translating an object along its own Y), over duration
// seconds.
func TweenTranslate(node *Node, delta mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	length := delta.Len()
	g := &TweenGroup{target: node}
	g.tween = gween.New(0, float32(length), duration, fn)
	dir := mgl64.Vec3{}
	if length > 0 {
		dir = delta.Mul(1 / length)
	}
	g.apply = func(step float64) {
		node.Position = node.Position.Add(node.Rotation.Rotate(dir.Mul(step)))
	}
	return g
}

// TweenRotate turns node by angle radians about axis (in its local frame)
// over duration seconds.
func TweenRotate(node *Node, axis mgl64.Vec3, angle float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.tween = gween.New(0, float32(angle), duration, fn)
	axis = axis.Normalize()
	g.apply = func(step float64) {
		node.Rotation = node.Rotation.Mul(mgl64.QuatRotate(step, axis)).Normalize()
	}
	return g
}
