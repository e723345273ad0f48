package volume

import "github.com/go-gl/mathgl/mgl64"

// Sphere represents a bounding sphere
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// AABB returns the box enclosing the sphere
func (s Sphere) AABB() AABB {
	radiusVec := mgl64.Vec3{s.Radius, s.Radius, s.Radius}

	return AABB{
		Min: s.Center.Sub(radiusVec),
		Max: s.Center.Add(radiusVec),
	}
}
