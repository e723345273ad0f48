package culling

import (
	"github.com/akmonengine/culling/hull"
	"github.com/akmonengine/culling/volume"
	"github.com/go-gl/mathgl/mgl64"
)

// Plane indices of a Frustum hull
const (
	FRUSTUM_LEFT = iota
	FRUSTUM_RIGHT
	FRUSTUM_BOTTOM
	FRUSTUM_TOP
	FRUSTUM_NEAR
	FRUSTUM_FAR
)

// ndcCorners are the corners of the clip-space cube, OpenGL convention (z in [-1, 1])
var ndcCorners = [8]mgl64.Vec4{
	{-1, -1, -1, 1}, {1, -1, -1, 1}, {-1, 1, -1, 1}, {1, 1, -1, 1},
	{-1, -1, 1, 1}, {1, -1, 1, 1}, {-1, 1, 1, 1}, {1, 1, 1, 1},
}

// Frustum is a six-plane hull extracted from a camera matrix, with the box enclosing it
type Frustum struct {
	*hull.ConvexHull
	// Corners in world space, near plane first
	Corners [8]mgl64.Vec3
	// Bounds encloses the Corners, used for the broad phase
	Bounds volume.AABB
}

// NewFrustum extracts the planes of viewProjection (projection * view, column-major).
//
// Planes follow the Gribb/Hartmann extraction, negated so that the outside of
// each plane is its positive side, then normalized so distances are metric.
// An error is returned when viewProjection is not invertible.
func NewFrustum(viewProjection mgl64.Mat4) (*Frustum, error) {
	inv, err := hull.Inverse(viewProjection)
	if err != nil {
		return nil, err
	}

	row0, row1, row2, row3 := viewProjection.Rows()
	coefficients := [6]mgl64.Vec4{
		FRUSTUM_LEFT:   row3.Add(row0),
		FRUSTUM_RIGHT:  row3.Sub(row0),
		FRUSTUM_BOTTOM: row3.Add(row1),
		FRUSTUM_TOP:    row3.Sub(row1),
		FRUSTUM_NEAR:   row3.Add(row2),
		FRUSTUM_FAR:    row3.Sub(row2),
	}

	f := &Frustum{ConvexHull: hull.NewConvexHull()}
	for _, c := range coefficients {
		plane := volume.NewPlane(c.Vec3(), c.W())
		plane.Negate()
		plane.Normalize()
		f.AddPlane(plane)
	}

	for i, c := range ndcCorners {
		world := inv.Mul4x1(c)
		f.Corners[i] = world.Vec3().Mul(1 / world.W())
	}
	f.Bounds.SetFromPoints(f.Corners[:]...)

	return f, nil
}
