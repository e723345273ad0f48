// Package hull implements a convex region bounded by half-space planes.
//
// A ConvexHull is the set of points p where Normal · p + D <= 0 for every plane,
// the canonical instance being a six-plane camera frustum. Queries against points,
// axis-aligned boxes and spheres are pure functions of the hull and the volume,
// and cost O(number of planes) with an early exit on the first plane proving
// the volume Outside.
//
// A hull with no planes is the whole space: every query answers Inside.
//
// ConvexHull carries no locking. To share one between goroutines, build a hull,
// stop mutating it, and hand out the pointer (see culling.View).
package hull

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/akmonengine/culling/volume"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularMatrix is returned when a hull is transformed by a non-invertible matrix
var ErrSingularMatrix = errors.New("hull: transform matrix is not invertible")

// ConvexHull is an ordered set of planes whose intersection is a convex region.
// Plane order has no effect on results, only on how early a query exits.
type ConvexHull struct {
	planes []volume.Plane
}

// NewConvexHull creates a hull bounded by planes
func NewConvexHull(planes ...volume.Plane) *ConvexHull {
	h := &ConvexHull{planes: make([]volume.Plane, 0, max(len(planes), 6))}
	h.planes = append(h.planes, planes...)

	return h
}

// AddPlane appends a plane to the hull
func (h *ConvexHull) AddPlane(plane volume.Plane) {
	h.planes = append(h.planes, plane)
}

// PushPlane appends the plane x*px + y*py + z*pz + d = 0
func (h *ConvexHull) PushPlane(x, y, z, d float64) {
	h.AddPlane(volume.Plane{Normal: mgl64.Vec3{x, y, z}, D: d})
}

// Clear removes every plane, the hull then contains all of space
func (h *ConvexHull) Clear() {
	h.planes = h.planes[:0]
}

// Clone returns a deep copy of the hull
func (h *ConvexHull) Clone() *ConvexHull {
	return NewConvexHull(h.planes...)
}

// Planes returns a copy of the hull's planes
func (h *ConvexHull) Planes() []volume.Plane {
	planes := make([]volume.Plane, len(h.planes))
	copy(planes, h.planes)

	return planes
}

// Len returns the number of planes
func (h *ConvexHull) Len() int {
	return len(h.planes)
}

// Transform moves the hull by mat, the same matrix used to transform points.
// Planes are transformed by the inverse-transpose of mat, computed once.
// ErrSingularMatrix is returned, and the hull left untouched, when mat has no inverse.
func (h *ConvexHull) Transform(mat mgl64.Mat4) error {
	invTranspose, err := inverseTranspose(mat)
	if err != nil {
		return err
	}

	for i := range h.planes {
		h.planes[i].Transform(invTranspose)
	}

	return nil
}

// Transformed returns a transformed copy of the hull, leaving h unchanged
func (h *ConvexHull) Transformed(mat mgl64.Mat4) (*ConvexHull, error) {
	clone := h.Clone()
	if err := clone.Transform(mat); err != nil {
		return nil, err
	}

	return clone, nil
}

func inverseTranspose(mat mgl64.Mat4) (mgl64.Mat4, error) {
	inv, err := Inverse(mat)
	if err != nil {
		return mgl64.Mat4{}, err
	}

	return inv.Transpose(), nil
}

// Inverse returns the inverse of mat, or ErrSingularMatrix when its determinant is
// exactly zero or not finite. Invertible matrices with a tiny determinant, such as
// small uniform scales, are inverted.
func Inverse(mat mgl64.Mat4) (mgl64.Mat4, error) {
	det := mat.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return mgl64.Mat4{}, fmt.Errorf("%w (determinant %v)", ErrSingularMatrix, det)
	}

	// Inv gives up below an absolute determinant epsilon. Scaling by k makes
	// |det(k*mat)| = 1, and inverse(mat) = k * inverse(k*mat).
	k := 1 / math.Pow(math.Abs(det), 0.25)
	inv := mat.Mul(k).Inv().Mul(k)
	for _, e := range inv {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return mgl64.Mat4{}, fmt.Errorf("%w (non-finite inverse)", ErrSingularMatrix)
		}
	}
	if inv == (mgl64.Mat4{}) {
		return mgl64.Mat4{}, fmt.Errorf("%w (determinant %v)", ErrSingularMatrix, det)
	}

	return inv, nil
}

// String dumps every plane, for debugging
func (h *ConvexHull) String() string {
	var sb strings.Builder

	sb.WriteString("ConvexHull{")
	for i, p := range h.planes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "Plane{Normal: [%g %g %g], D: %g}", p.Normal.X(), p.Normal.Y(), p.Normal.Z(), p.D)
	}
	sb.WriteString("}")

	return sb.String()
}
