// Package picking resolves continuous pointer positions on the rendered
// board into discrete grid addresses.
package picking

import (
	"math"

	"github.com/zuzzo/Dungeon/pkg/gmath"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    gmath.Vec3
	Direction gmath.Vec3
}

// ScreenToRay converts pixel coordinates into a world-space ray.
// invViewProj is the inverse of the camera's view-projection matrix; the
// camera collaborator supplies it.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj gmath.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // screen Y grows downward

	near := invViewProj.MulVec4(gmath.Vec4{X: ndcX, Y: ndcY, Z: -1, W: 1}).Dehomogenize()
	far := invViewProj.MulVec4(gmath.Vec4{X: ndcX, Y: ndcY, Z: 1, W: 1}).Dehomogenize()

	return Ray{
		Origin:    near,
		Direction: far.Sub(near).Normalize(),
	}
}

// IntersectGround intersects the ray with the horizontal plane at the
// given height and returns the hit point's X/Z. ok is false when the ray
// is parallel to the plane or the hit lies behind the origin.
func (r Ray) IntersectGround(planeY float32) (x, z float32, ok bool) {
	if math.Abs(float64(r.Direction.Y)) < 1e-3 {
		return 0, 0, false
	}
	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false
	}
	return r.Origin.X + t*r.Direction.X, r.Origin.Z + t*r.Direction.Z, true
}
