package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// nearPlane is the closest camera-space depth that still gets drawn.
const nearPlane = 0.1

// viewport is a pinhole camera looking down its local -Z axis.
type viewport struct {
	pos    mgl64.Vec3
	rot    mgl64.Quat
	invRot mgl64.Quat
	focal  float64
	cx, cy float64
}

func newViewport(cfg RunConfig) viewport {
	rot := cfg.Camera.Orientation.Normalize()
	halfFOV := mgl64.DegToRad(cfg.FOV) / 2
	return viewport{
		pos:    cfg.Camera.Position,
		rot:    rot,
		invRot: rot.Inverse(),
		focal:  float64(cfg.Height) / 2 / math.Tan(halfFOV),
		cx:     float64(cfg.Width) / 2,
		cy:     float64(cfg.Height) / 2,
	}
}

// project maps a world point to screen coordinates and returns its depth in
// front of the camera. ok is false behind the near plane.
func (v viewport) project(p mgl64.Vec3) (sx, sy, depth float64, ok bool) {
	local := v.invRot.Rotate(p.Sub(v.pos))
	depth = -local[2]
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	sx = v.cx + v.focal*local[0]/depth
	sy = v.cy - v.focal*local[1]/depth
	return sx, sy, depth, true
}

// unproject returns the world point under (sx, sy) at the given depth in
// front of the camera.
func (v viewport) unproject(sx, sy, depth float64) mgl64.Vec3 {
	local := mgl64.Vec3{
		(sx - v.cx) * depth / v.focal,
		-(sy - v.cy) * depth / v.focal,
		-depth,
	}
	return v.pos.Add(v.rot.Rotate(local))
}

// depthOf returns p's camera-space depth.
func (v viewport) depthOf(p mgl64.Vec3) float64 {
	return -v.invRot.Rotate(p.Sub(v.pos))[2]
}

// projectRadius converts a world-space radius at depth to pixels.
func (v viewport) projectRadius(r, depth float64) float64 {
	return v.focal * r / depth
}
