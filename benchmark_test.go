package willowxr

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// setupBenchInteraction creates an Interaction with n spawned objects laid
// out on a 0.2 m grid.
func setupBenchInteraction(n int) (*Interaction, *SimulatedHands) {
	s := NewScene()
	hands := NewSimulatedHands()
	ix := NewInteraction(s, hands, Config{})
	for i := 0; i < n; i++ {
		pos := mgl64.Vec3{float64(i%10) * 0.2, float64(i/10%10) * 0.2, float64(i/100) * 0.2}
		ix.Registry().Spawn(pos, mgl64.QuatIdent())
	}
	return ix, hands
}

func BenchmarkFindNearest_1000Objects(b *testing.B) {
	ix, _ := setupBenchInteraction(1000)
	p := mgl64.Vec3{0.9, 0.9, 0.9}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Detector().FindNearest(p)
	}
}

func BenchmarkTick_1000Objects_Scaling(b *testing.B) {
	ix, hands := setupBenchInteraction(1000)
	hands.SetFingertip(HandRight, mgl64.Vec3{0.01, 0, 0})
	hands.SetFingertip(HandLeft, mgl64.Vec3{-0.01, 0, 0})
	ix.HandlePinch(PinchEvent{Hand: HandRight, Kind: PinchStart})
	ix.HandlePinch(PinchEvent{Hand: HandLeft, Kind: PinchStart})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hands.SetFingertip(HandLeft, mgl64.Vec3{-0.01 - float64(i%10)*0.001, 0, 0})
		ix.Tick(1.0 / 60)
	}
}

func BenchmarkReparent(b *testing.B) {
	world := NewContainer("world")
	anchor := NewAnchor("tip")
	anchor.Position = mgl64.Vec3{1, 2, 3}
	world.AddChild(anchor)
	n := NewSphere("obj", 0.05, ColorWhite)
	world.AddChild(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			n.Reparent(anchor)
		} else {
			n.Reparent(world)
		}
	}
}
