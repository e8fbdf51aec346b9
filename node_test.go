package willowxr

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewAnchorDefaults(t *testing.T) {
	n := NewAnchor("tip")
	assertNodeDefaults(t, n, "tip", NodeTypeAnchor)
}

func TestNewBoxDefaults(t *testing.T) {
	c := Color{R: 1, A: 1}
	n := NewBox("box", 0.5, c)
	assertNodeDefaults(t, n, "box", NodeTypeBox)
	if n.Size != 0.5 {
		t.Errorf("Size = %v, want 0.5", n.Size)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
}

func TestNewSphereDefaults(t *testing.T) {
	n := NewSphere("ball", 0.7, ColorWhite)
	assertNodeDefaults(t, n, "ball", NodeTypeSphere)
	if n.Size != 0.7 {
		t.Errorf("Size = %v, want 0.7", n.Size)
	}
}

func TestNewModelDefaults(t *testing.T) {
	n := NewModel("glider.glb")
	assertNodeDefaults(t, n, "glider.glb", NodeTypeModel)
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %v, want %v", n.Type, typ)
	}
	if n.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want unit", n.Scale)
	}
	if n.Rotation != mgl64.QuatIdent() {
		t.Errorf("Rotation = %v, want identity", n.Rotation)
	}
	if !n.Visible {
		t.Error("Visible should default to true")
	}
	if !n.transformDirty {
		t.Error("new nodes should start dirty")
	}
}

func TestNodeIDsUnique(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

// --- AddChild / RemoveChild ---

func TestAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("parent should have exactly the child")
	}
}

func TestAddChildMovesFromOldParent(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent children = %d, want 0", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child should belong to b")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewContainer("p").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	a.AddChild(b)
	b.AddChild(c)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on cycle")
		}
	}()
	c.AddChild(a)
}

func TestAddChildSelfPanics(t *testing.T) {
	a := NewContainer("a")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding node to itself")
		}
	}()
	a.AddChild(a)
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	c1 := NewContainer("c1")
	c2 := NewContainer("c2")
	c3 := NewContainer("c3")
	parent.AddChild(c1)
	parent.AddChild(c2)
	parent.AddChild(c3)

	parent.RemoveChild(c2)
	if c2.Parent != nil {
		t.Error("removed child should have nil parent")
	}
	kids := parent.Children()
	if len(kids) != 2 || kids[0] != c1 || kids[1] != c3 {
		t.Errorf("children order broken: %v", kids)
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	b.RemoveChild(child)
}

func TestRemoveFromParentNoParent(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent() // must not panic
	if n.Parent != nil {
		t.Error("Parent should stay nil")
	}
}

// --- Dispose ---

func TestDisposeRecursive(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewContainer("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()
	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Error("mid and leaf should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Errorf("root children = %d, want 0", root.NumChildren())
	}
	if mid.ID != 0 {
		t.Errorf("disposed ID = %d, want 0", mid.ID)
	}
	mid.Dispose() // second call is a no-op
}

// --- walkUpdate ---

func TestWalkUpdateCallsOnUpdate(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)

	var got []string
	root.OnUpdate = func(dt float64) { got = append(got, "root") }
	child.OnUpdate = func(dt float64) {
		if dt != 0.5 {
			t.Errorf("dt = %v, want 0.5", dt)
		}
		got = append(got, "child")
	}
	walkUpdate(root, 0.5)
	if len(got) != 2 || got[0] != "root" || got[1] != "child" {
		t.Errorf("call order = %v", got)
	}
}

func TestWalkUpdateToleratesReparent(t *testing.T) {
	root := NewContainer("root")
	other := NewContainer("other")
	a := NewContainer("a")
	b := NewContainer("b")
	root.AddChild(a)
	root.AddChild(b)

	calls := 0
	a.OnUpdate = func(float64) {
		calls++
		other.AddChild(a)
	}
	b.OnUpdate = func(float64) { calls++ }
	walkUpdate(root, 0)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
