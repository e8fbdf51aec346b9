package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
)

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic: the interaction loop is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	// Computed during traversal
	worldTransform mgl64.Mat4
	transformDirty bool

	Visible bool

	// Shape fields (NodeTypeBox, NodeTypeSphere)
	Size  float64
	Color Color

	// Metadata
	UserData any
	EntityID uint32

	// OnUpdate is called once per frame during Scene.Update with the frame
	// delta in seconds.
	OnUpdate func(dt float64)

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Rotation = mgl64.QuatIdent()
	n.Scale = mgl64.Vec3{1, 1, 1}
	n.Color = ColorWhite
	n.Visible = true
	n.worldTransform = mgl64.Ident4()
	n.transformDirty = true
}

// NewContainer creates a group node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewAnchor creates a node that mirrors a tracked joint. Anchors keep unit
// scale so children parented to them keep their own scale in world space.
// Renderers draw an anchor's children but not the anchor itself.
func NewAnchor(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeAnchor}
	nodeDefaults(n)
	return n
}

// NewBox creates a cube with the given edge length.
func NewBox(name string, size float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeBox, Size: size}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewSphere creates a sphere with the given radius.
func NewSphere(name string, radius float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeSphere, Size: radius}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewModel creates a placeholder node for a loaded asset.
func NewModel(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeModel}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// The child's local transform is kept as is; use Reparent to keep its
// world transform instead.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("willowxr: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("willowxr: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	child.transformDirty = true
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("willowxr: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	child.transformDirty = true
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// walkUpdate calls OnUpdate on n and its descendants. The child slice is
// copied first because callbacks may reparent nodes.
func walkUpdate(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if len(n.children) == 0 {
		return
	}
	kids := make([]*Node, len(n.children))
	copy(kids, n.children)
	for _, child := range kids {
		walkUpdate(child, dt)
	}
}
