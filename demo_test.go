package willowxr

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBuildDemo(t *testing.T) {
	s := NewScene()
	ix := NewInteraction(s, NewSimulatedHands(), Config{})
	d := BuildDemo(context.Background(), ix, PlaceholderLoader)

	if d.Box == nil || d.Box.Parent != s.World() || d.Box.Type != NodeTypeBox {
		t.Fatal("box missing")
	}
	assertNear(t, "box size", d.Box.Size, 0.5)
	if d.Sphere == nil || d.Sphere.Type != NodeTypeSphere {
		t.Fatal("sphere missing")
	}
	assertNear(t, "sphere radius", d.Sphere.Size, 0.7)
	assertVec(t, "sphere", d.Sphere.Position, mgl64.Vec3{1.5, 0, 0})
	if d.Glider != nil {
		t.Error("glider should not exist before the load is applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.AwaitAssets(ctx); err != nil {
		t.Fatalf("AwaitAssets: %v", err)
	}
	if d.Glider == nil {
		t.Fatal("glider not loaded")
	}
	if d.Glider.Name != GliderAsset {
		t.Errorf("glider name = %q", d.Glider.Name)
	}
	assertVec(t, "glider position", d.Glider.Position, mgl64.Vec3{-0.5, 0.5, 1})
	assertVec(t, "glider scale", d.Glider.Scale, mgl64.Vec3{5, 5, 5})
	if ix.ActionTarget() != d.Glider {
		t.Error("glider should be the controller action target")
	}
}

func TestDemoBoxSpins(t *testing.T) {
	s := NewScene()
	ix := NewInteraction(s, NewSimulatedHands(), Config{})
	d := BuildDemo(context.Background(), ix, PlaceholderLoader)

	before := d.Box.Rotation
	ix.Tick(1.0 / 60)
	if d.Box.Rotation == before {
		t.Error("box should rotate every frame")
	}
	if d.Box.Rotation.Len() < 0.999 || d.Box.Rotation.Len() > 1.001 {
		t.Errorf("rotation not normalized: %v", d.Box.Rotation.Len())
	}
}
