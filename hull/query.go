package hull

import (
	"github.com/akmonengine/culling/volume"
	"github.com/go-gl/mathgl/mgl64"
)

// ContainsPoint reports whether point is inside every half-space.
// A point lying exactly on a plane is inside.
func (h *ConvexHull) ContainsPoint(point mgl64.Vec3) bool {
	for _, plane := range h.planes {
		if plane.Distance(point) > 0 {
			return false
		}
	}

	return true
}

// IntersectAABB classifies the box against the hull.
//
// For each plane only two corners matter: the one nearest to the outside
// (min on axes where the normal is >= 0, max elsewhere) and its opposite.
// If the near corner is outside, the whole box is outside this plane and the
// hull. If only the far corner is outside, the box straddles the plane; the
// remaining planes are still tested since one of them may prove Outside.
func (h *ConvexHull) IntersectAABB(aabb volume.AABB) IntersectionState {
	result := Inside

	for _, plane := range h.planes {
		near, far := aabb.Max, aabb.Min
		for axis := 0; axis < 3; axis++ {
			if plane.Normal[axis] >= 0 {
				near[axis] = aabb.Min[axis]
				far[axis] = aabb.Max[axis]
			}
		}

		if plane.Distance(near) > 0 {
			return Outside
		}
		if plane.Distance(far) > 0 {
			result = Intersection
		}
	}

	return result
}

// ContainsAABB reports whether the box is not provably disjoint from the hull.
// It is true for both Inside and Intersection: a box crossing a plane counts as contained.
func (h *ConvexHull) ContainsAABB(aabb volume.AABB) bool {
	return h.IntersectAABB(aabb) != Outside
}

// IntersectSphere classifies the sphere against the hull
func (h *ConvexHull) IntersectSphere(center mgl64.Vec3, radius float64) IntersectionState {
	result := Inside

	for _, plane := range h.planes {
		dist := plane.Distance(center)
		if dist > radius {
			return Outside
		} else if dist > -radius {
			result = Intersection
		}
	}

	return result
}

// ContainsSphere reports whether the sphere is not provably disjoint from the hull,
// with the same conservative semantics as ContainsAABB.
func (h *ConvexHull) ContainsSphere(center mgl64.Vec3, radius float64) bool {
	return h.IntersectSphere(center, radius) != Outside
}
