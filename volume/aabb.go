package volume

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB creates an empty AABB.
// Min is +Inf and Max is -Inf on every axis, so folding any point into it yields that point.
func NewAABB() AABB {
	return AABB{
		Min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// NewAABBFromBounds creates an AABB from its six scalar bounds
func NewAABBFromBounds(minX, minY, minZ, maxX, maxY, maxZ float64) AABB {
	return AABB{
		Min: mgl64.Vec3{minX, minY, minZ},
		Max: mgl64.Vec3{maxX, maxY, maxZ},
	}
}

// NewAABBFromPoints creates the smallest AABB enclosing points
func NewAABBFromPoints(points ...mgl64.Vec3) AABB {
	var a AABB
	a.SetFromPoints(points...)

	return a
}

// SetFromPoints resets the AABB to the empty box, then extends it to enclose every point.
// The previous content is discarded.
func (a *AABB) SetFromPoints(points ...mgl64.Vec3) {
	*a = NewAABB()

	for _, p := range points {
		a.Min[0] = math.Min(a.Min[0], p[0])
		a.Min[1] = math.Min(a.Min[1], p[1])
		a.Min[2] = math.Min(a.Min[2], p[2])

		a.Max[0] = math.Max(a.Max[0], p[0])
		a.Max[1] = math.Max(a.Max[1], p[1])
		a.Max[2] = math.Max(a.Max[2], p[2])
	}
}

// Transform applies the affine matrix to the box, keeping it axis-aligned.
// From "Transforming Axis-Aligned Bounding Boxes", Graphics Gems (Arvo, 1990):
// each output axis starts at the translation and accumulates the smaller and
// larger of the per-axis products, which is exact for any affine matrix.
func (a *AABB) Transform(m mgl64.Mat4) {
	min := a.Min
	max := a.Max

	// Translation can be applied directly
	a.Min = mgl64.Vec3{m[12], m[13], m[14]}
	a.Max = a.Min

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e := m[i*4+j] * min[i]
			f := m[i*4+j] * max[i]

			a.Min[j] += math.Min(e, f)
			a.Max[j] += math.Max(e, f)
		}
	}
}

// Transformed returns a copy of the AABB transformed by m
func (a AABB) Transformed(m mgl64.Mat4) AABB {
	a.Transform(m)

	return a
}

// ContainsPoint checks if a point is inside the AABB, boundaries included
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// IsEmpty reports whether the box encloses no volume, which includes the empty sentinel.
// A box with a NaN bound is empty.
func (a AABB) IsEmpty() bool {
	return !(a.Min.X() <= a.Max.X() && a.Min.Y() <= a.Max.Y() && a.Min.Z() <= a.Max.Z())
}

// Center returns the middle point of the box
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extents returns the half-size of the box on each axis
func (a AABB) Extents() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}
