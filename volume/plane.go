package volume

import "github.com/go-gl/mathgl/mgl64"

// Plane represents an oriented half-space boundary.
// The plane is defined by the equation: Normal · p + D = 0
// Points where Normal · p + D <= 0 are inside, positive values are outside.
type Plane struct {
	Normal mgl64.Vec3 // Plane normal (normalized for metric distances)
	D      float64    // Plane constant
}

// NewPlane creates a plane from its normal and constant
func NewPlane(normal mgl64.Vec3, d float64) Plane {
	return Plane{Normal: normal, D: d}
}

// NewPlaneFromTriangle creates the plane passing through p0, p1 and p2
func NewPlaneFromTriangle(p0, p1, p2 mgl64.Vec3) Plane {
	var p Plane
	p.SetFromTriangle(p0, p1, p2)

	return p
}

// SetFromTriangle sets the plane to pass through the three points.
// The winding p0 -> p1 -> p2 gives the orientation of the normal.
// Collinear points produce an undefined normal.
func (p *Plane) SetFromTriangle(p0, p1, p2 mgl64.Vec3) {
	p.Normal = p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	p.D = -p.Normal.Dot(p0)
}

// Distance returns the signed distance from point to the plane, scaled by |Normal|
func (p Plane) Distance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Negate flips the orientation of the plane
func (p *Plane) Negate() {
	p.Normal = p.Normal.Mul(-1)
	p.D = -p.D
}

// Normalize rescales the plane so that Normal has unit length.
// A zero normal is left untouched.
func (p *Plane) Normalize() {
	length := p.Normal.Len()
	if length == 0 {
		return
	}

	p.Normal = p.Normal.Mul(1 / length)
	p.D /= length
}

// IntersectLine returns the point where the line origin + t*direction crosses the plane.
// The result is not finite when direction is parallel to the plane.
func (p Plane) IntersectLine(origin, direction mgl64.Vec3) mgl64.Vec3 {
	t := -(p.Normal.Dot(origin) + p.D) / p.Normal.Dot(direction)

	return origin.Add(direction.Mul(t))
}

// Transform applies invTranspose to the homogeneous coefficients (Normal, D).
// Planes transform by the inverse-transpose of the matrix used for points,
// the caller computes it once for a whole set of planes.
func (p *Plane) Transform(invTranspose mgl64.Mat4) {
	transformed := invTranspose.Mul4x1(mgl64.Vec4{p.Normal.X(), p.Normal.Y(), p.Normal.Z(), p.D})

	p.Normal = transformed.Vec3()
	p.D = transformed.W()
}
