package picking

import (
	"testing"

	"github.com/zuzzo/Dungeon/pkg/gmath"
)

func TestIntersectGroundStraightDown(t *testing.T) {
	r := Ray{
		Origin:    gmath.Vec3{X: 1.5, Y: 10, Z: -0.5},
		Direction: gmath.Vec3{X: 0, Y: -1, Z: 0},
	}
	x, z, ok := r.IntersectGround(0)
	if !ok {
		t.Fatal("expected intersection")
	}
	if x != 1.5 || z != -0.5 {
		t.Errorf("expected hit (1.5,-0.5), got (%v,%v)", x, z)
	}
}

func TestIntersectGroundAngled(t *testing.T) {
	r := Ray{
		Origin:    gmath.Vec3{X: 0, Y: 2, Z: 0},
		Direction: gmath.Vec3{X: 1, Y: -1, Z: 0}.Normalize(),
	}
	x, z, ok := r.IntersectGround(0)
	if !ok {
		t.Fatal("expected intersection")
	}
	if x < 1.999 || x > 2.001 || z != 0 {
		t.Errorf("expected hit near (2,0), got (%v,%v)", x, z)
	}
}

func TestIntersectGroundParallel(t *testing.T) {
	r := Ray{
		Origin:    gmath.Vec3{Y: 5},
		Direction: gmath.Vec3{X: 1},
	}
	if _, _, ok := r.IntersectGround(0); ok {
		t.Error("ray parallel to plane should not intersect")
	}
}

func TestIntersectGroundBehindOrigin(t *testing.T) {
	r := Ray{
		Origin:    gmath.Vec3{Y: 5},
		Direction: gmath.Vec3{Y: 1}, // pointing away from the plane
	}
	if _, _, ok := r.IntersectGround(0); ok {
		t.Error("plane behind the ray origin should not intersect")
	}
}

func TestScreenToRayCenterOfViewport(t *testing.T) {
	// With an identity view-projection, NDC space is world space: the
	// viewport center unprojects to a ray from z=-1 to z=1 on the axis.
	r := ScreenToRay(400, 300, 800, 600, gmath.Identity())
	if r.Origin.X != 0 || r.Origin.Y != 0 || r.Origin.Z != -1 {
		t.Errorf("expected origin (0,0,-1), got %v", r.Origin)
	}
	if r.Direction.Z != 1 || r.Direction.X != 0 || r.Direction.Y != 0 {
		t.Errorf("expected direction +z, got %v", r.Direction)
	}
}
