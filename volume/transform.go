package volume

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position, rotation and scale in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Mat4 returns the column-major matrix T * R * S
func (t Transform) Mat4() mgl64.Mat4 {
	translation := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translation.Mul4(t.Rotation.Normalize().Mat4()).Mul4(scale)
}
