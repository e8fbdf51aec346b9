package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ProximityDetector finds the spawned object a fingertip is touching.
// Nothing is cached: the registry is small and queries happen once per
// pinch, not per frame.
type ProximityDetector struct {
	registry *SpawnRegistry
}

// NewProximityDetector creates a detector over registry's live set.
func NewProximityDetector(registry *SpawnRegistry) *ProximityDetector {
	return &ProximityDetector{registry: registry}
}

// FindNearest returns the closest object whose scaled bounding radius
// exceeds its distance to point. Equal distances keep the earlier-spawned
// object. Returns nil when nothing qualifies or point is not finite.
func (d *ProximityDetector) FindNearest(point mgl64.Vec3) *SpawnedObject {
	if !finiteVec(point) {
		return nil
	}
	var best *SpawnedObject
	var bestDist float64
	for _, o := range d.registry.objects {
		dist := o.Position().Sub(point).Len()
		if o.ScaledRadius() <= dist {
			continue
		}
		if best == nil || dist < bestDist {
			best = o
			bestDist = dist
		}
	}
	return best
}
