package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
)

// decomposeEpsilon guards divisions by an axis scale that has collapsed to zero.
const decomposeEpsilon = 1e-12

// computeLocalTransform computes the local matrix from the node's transform
// properties.
//
// Composition order:
//
//	Scale -> Rotate -> Translate(Position)
func computeLocalTransform(n *Node) mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := n.Rotation.Normalize().Mat4()
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// decomposeTransform splits an affine matrix without shear into position,
// rotation and per-axis scale.
func decomposeTransform(m mgl64.Mat4) (pos mgl64.Vec3, rot mgl64.Quat, scale mgl64.Vec3) {
	pos = m.Col(3).Vec3()
	c0 := m.Col(0).Vec3()
	c1 := m.Col(1).Vec3()
	c2 := m.Col(2).Vec3()
	scale = mgl64.Vec3{c0.Len(), c1.Len(), c2.Len()}
	if m.Det() < 0 {
		scale[0] = -scale[0]
	}
	for i, c := range [3]*mgl64.Vec3{&c0, &c1, &c2} {
		if s := scale[i]; s > decomposeEpsilon || s < -decomposeEpsilon {
			*c = c.Mul(1 / s)
		}
	}
	basis := mgl64.Mat4FromCols(c0.Vec4(0), c1.Vec4(0), c2.Vec4(0), mgl64.Vec4{0, 0, 0, 1})
	rot = mgl64.Mat4ToQuat(basis).Normalize()
	return pos, rot, scale
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform mgl64.Mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Mul4(computeLocalTransform(n))
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(p mgl64.Vec3) {
	n.Position = p
	n.transformDirty = true
}

// SetRotation sets the node's local orientation and marks it dirty.
func (n *Node) SetRotation(q mgl64.Quat) {
	n.Rotation = q
	n.transformDirty = true
}

// SetScale sets the node's per-axis scale and marks it dirty.
func (n *Node) SetScale(s mgl64.Vec3) {
	n.Scale = s
	n.transformDirty = true
}

// SetUniformScale applies s to all three axes.
func (n *Node) SetUniformScale(s float64) {
	n.SetScale(mgl64.Vec3{s, s, s})
}

// SetPose sets position and orientation together.
func (n *Node) SetPose(p Pose) {
	n.Position = p.Position
	n.Rotation = p.Orientation
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- World-space queries ---

// LocalMatrix returns the node's local transform matrix.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	return computeLocalTransform(n)
}

// WorldMatrix returns the node's world transform, computed from the current
// local transforms of the node and all of its ancestors. Unlike the cached
// matrix refreshed in Scene.Update, this is always current.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = computeLocalTransform(p).Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// WorldPose returns the node's world position and orientation.
func (n *Node) WorldPose() Pose {
	pos, rot, _ := decomposeTransform(n.WorldMatrix())
	return Pose{Position: pos, Orientation: rot}
}

// CachedWorldMatrix returns the world matrix computed by the last
// Scene.Update traversal. Renderers read this one.
func (n *Node) CachedWorldMatrix() mgl64.Mat4 {
	return n.worldTransform
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	inv := n.WorldMatrix().Inv()
	return inv.Mul4x1(p.Vec4(1)).Vec3()
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return n.WorldMatrix().Mul4x1(p.Vec4(1)).Vec3()
}

// Reparent moves n under newParent while keeping its world transform: the
// ownership transfer used when a hand grabs or releases an object.
// A nil newParent detaches n and bakes its world transform into its local one.
// Panics if newParent is n or one of its descendants.
func (n *Node) Reparent(newParent *Node) {
	if newParent != nil && isAncestor(n, newParent) {
		panic("willowxr: reparent would create a cycle")
	}
	world := n.WorldMatrix()
	local := world
	if newParent != nil {
		parentWorld := newParent.WorldMatrix()
		if d := parentWorld.Det(); d > -decomposeEpsilon && d < decomposeEpsilon {
			// A collapsed parent cannot be inverted; fall back to plain attach.
			newParent.AddChild(n)
			return
		}
		local = parentWorld.Inv().Mul4(world)
	}
	pos, rot, scale := decomposeTransform(local)
	if newParent != nil {
		newParent.AddChild(n)
	} else {
		n.RemoveFromParent()
	}
	n.Position = pos
	n.Rotation = rot
	n.Scale = scale
	n.transformDirty = true
}
