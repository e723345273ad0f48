// Package interop marshals flat numeric buffers and scalar arguments into the
// hull and volume types, for hosts that cannot pass Go values across their boundary.
//
// Every function here is a thin adapter: the geometry lives in the hull and volume packages.
// Buffers of the wrong length are rejected with ErrBufferLength, never truncated or padded.
package interop

import (
	"errors"
	"fmt"

	"github.com/akmonengine/culling/hull"
	"github.com/akmonengine/culling/volume"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	Vec3Len = 3
	AABBLen = 6
	Mat4Len = 16
)

// ErrBufferLength is returned when a buffer does not hold the expected number of elements
var ErrBufferLength = errors.New("interop: wrong buffer length")

func checkLen(kind string, buf []float64, expected int) error {
	if len(buf) != expected {
		return fmt.Errorf("%w: %s needs %d elements, got %d", ErrBufferLength, kind, expected, len(buf))
	}

	return nil
}

// Vec3FromSlice reads [x, y, z]
func Vec3FromSlice(buf []float64) (mgl64.Vec3, error) {
	if err := checkLen("point", buf, Vec3Len); err != nil {
		return mgl64.Vec3{}, err
	}

	return mgl64.Vec3{buf[0], buf[1], buf[2]}, nil
}

// AABBFromSlice reads [minX, minY, minZ, maxX, maxY, maxZ]
func AABBFromSlice(buf []float64) (volume.AABB, error) {
	if err := checkLen("aabb", buf, AABBLen); err != nil {
		return volume.AABB{}, err
	}

	return volume.NewAABBFromBounds(buf[0], buf[1], buf[2], buf[3], buf[4], buf[5]), nil
}

// Mat4FromSlice reads a column-major 4x4 matrix, translation at indices 12..14
func Mat4FromSlice(buf []float64) (mgl64.Mat4, error) {
	var m mgl64.Mat4
	if err := checkLen("matrix", buf, Mat4Len); err != nil {
		return m, err
	}
	copy(m[:], buf)

	return m, nil
}

// Hull exposes a ConvexHull through scalar and flat-buffer entry points
type Hull struct {
	hull *hull.ConvexHull
}

func NewHull() *Hull {
	return &Hull{hull: hull.NewConvexHull()}
}

// ConvexHull returns the wrapped hull
func (h *Hull) ConvexHull() *hull.ConvexHull {
	return h.hull
}

// Copy returns an independent copy of the hull
func (h *Hull) Copy() *Hull {
	return &Hull{hull: h.hull.Clone()}
}

func (h *Hull) Clear() {
	h.hull.Clear()
}

func (h *Hull) PushPlane(x, y, z, d float64) {
	h.hull.PushPlane(x, y, z, d)
}

func (h *Hull) IntersectAABB(minX, minY, minZ, maxX, maxY, maxZ float64) hull.IntersectionState {
	return h.hull.IntersectAABB(volume.NewAABBFromBounds(minX, minY, minZ, maxX, maxY, maxZ))
}

func (h *Hull) ContainsAABB(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return h.hull.ContainsAABB(volume.NewAABBFromBounds(minX, minY, minZ, maxX, maxY, maxZ))
}

// ContainsPoint reads the point from a 3-element buffer
func (h *Hull) ContainsPoint(point []float64) (bool, error) {
	p, err := Vec3FromSlice(point)
	if err != nil {
		return false, err
	}

	return h.hull.ContainsPoint(p), nil
}

func (h *Hull) IntersectSphere(x, y, z, radius float64) hull.IntersectionState {
	return h.hull.IntersectSphere(mgl64.Vec3{x, y, z}, radius)
}

func (h *Hull) ContainsSphere(x, y, z, radius float64) bool {
	return h.hull.ContainsSphere(mgl64.Vec3{x, y, z}, radius)
}

// Transform reads a 16-element column-major matrix and transforms the hull by it
func (h *Hull) Transform(mat []float64) error {
	m, err := Mat4FromSlice(mat)
	if err != nil {
		return err
	}

	return h.hull.Transform(m)
}

// DebugString dumps the planes, for diagnostics only
func (h *Hull) DebugString() string {
	return h.hull.String()
}
