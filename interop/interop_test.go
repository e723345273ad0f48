package interop

import (
	"errors"
	"strings"
	"testing"

	"github.com/akmonengine/culling/hull"
	"github.com/akmonengine/culling/volume"
	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Buffer Tests
// =============================================================================

func TestBufferLength(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"Vec3 short", func() error { _, err := Vec3FromSlice([]float64{1, 2}); return err }},
		{"Vec3 long", func() error { _, err := Vec3FromSlice([]float64{1, 2, 3, 4}); return err }},
		{"AABB short", func() error { _, err := AABBFromSlice(make([]float64, 5)); return err }},
		{"AABB nil", func() error { _, err := AABBFromSlice(nil); return err }},
		{"Mat4 short", func() error { _, err := Mat4FromSlice(make([]float64, 15)); return err }},
		{"Mat4 long", func() error { _, err := Mat4FromSlice(make([]float64, 17)); return err }},
		{"Hull point", func() error { _, err := NewHull().ContainsPoint([]float64{0}); return err }},
		{"Hull transform", func() error { return NewHull().Transform(make([]float64, 9)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrBufferLength) {
				t.Errorf("error = %v, want ErrBufferLength", err)
			}
		})
	}
}

func TestAABBFromSlice(t *testing.T) {
	a, err := AABBFromSlice([]float64{-1, -2, -3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}

	if a != volume.NewAABBFromBounds(-1, -2, -3, 4, 5, 6) {
		t.Errorf("AABBFromSlice() = %v", a)
	}
}

func TestMat4FromSlice_ColumnMajor(t *testing.T) {
	buf := []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		7, 8, 9, 1,
	}
	m, err := Mat4FromSlice(buf)
	if err != nil {
		t.Fatal(err)
	}

	if m != mgl64.Translate3D(7, 8, 9) {
		t.Errorf("Mat4FromSlice() = %v, want a translation by [7 8 9]", m)
	}
}

// =============================================================================
// Hull Adapter Tests
// =============================================================================

func newCubeHull() *Hull {
	h := NewHull()
	h.PushPlane(1, 0, 0, -1)
	h.PushPlane(-1, 0, 0, -1)
	h.PushPlane(0, 1, 0, -1)
	h.PushPlane(0, -1, 0, -1)
	h.PushPlane(0, 0, 1, -1)
	h.PushPlane(0, 0, -1, -1)

	return h
}

func TestHull_MatchesConvexHull(t *testing.T) {
	h := newCubeHull()
	core := h.ConvexHull()

	boxes := [][6]float64{
		{-0.5, -0.5, -0.5, 0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5, 2, 2, 2},
		{3, 3, 3, 4, 4, 4},
	}
	for _, b := range boxes {
		aabb := volume.NewAABBFromBounds(b[0], b[1], b[2], b[3], b[4], b[5])
		if got := h.IntersectAABB(b[0], b[1], b[2], b[3], b[4], b[5]); got != core.IntersectAABB(aabb) {
			t.Errorf("IntersectAABB(%v) = %v, want %v", b, got, core.IntersectAABB(aabb))
		}
		if got := h.ContainsAABB(b[0], b[1], b[2], b[3], b[4], b[5]); got != core.ContainsAABB(aabb) {
			t.Errorf("ContainsAABB(%v) = %v", b, got)
		}
	}

	spheres := [][4]float64{{0, 0, 0, 0.5}, {1, 0, 0, 0.5}, {5, 0, 0, 1}}
	expected := []hull.IntersectionState{hull.Inside, hull.Intersection, hull.Outside}
	for i, s := range spheres {
		if got := h.IntersectSphere(s[0], s[1], s[2], s[3]); got != expected[i] {
			t.Errorf("IntersectSphere(%v) = %v, want %v", s, got, expected[i])
		}
		if got := h.ContainsSphere(s[0], s[1], s[2], s[3]); got != (expected[i] != hull.Outside) {
			t.Errorf("ContainsSphere(%v) = %v", s, got)
		}
	}

	inside, err := h.ContainsPoint([]float64{0.5, 0.5, 0.5})
	if err != nil || !inside {
		t.Errorf("ContainsPoint() = %v, %v", inside, err)
	}
}

func TestHull_Transform(t *testing.T) {
	h := newCubeHull()
	translation := mgl64.Translate3D(10, 0, 0)

	if err := h.Transform(translation[:]); err != nil {
		t.Fatal(err)
	}
	inside, _ := h.ContainsPoint([]float64{10, 0, 0})
	if !inside {
		t.Error("Translated center should be inside")
	}

	singular := make([]float64, 16)
	if err := h.Transform(singular); !errors.Is(err, hull.ErrSingularMatrix) {
		t.Errorf("Transform(singular) error = %v, want ErrSingularMatrix", err)
	}
}

func TestHull_CopyAndClear(t *testing.T) {
	h := newCubeHull()
	c := h.Copy()

	h.Clear()
	if h.ConvexHull().Len() != 0 {
		t.Errorf("Len() after Clear = %d", h.ConvexHull().Len())
	}
	if c.ConvexHull().Len() != 6 {
		t.Errorf("Copy Len() = %d, want 6", c.ConvexHull().Len())
	}
	if got := h.IntersectAABB(100, 100, 100, 101, 101, 101); got != hull.Inside {
		t.Errorf("Cleared hull IntersectAABB() = %v, want Inside", got)
	}
}

func TestHull_DebugString(t *testing.T) {
	h := NewHull()
	h.PushPlane(0, 0, 1, -4)

	if s := h.DebugString(); !strings.Contains(s, "D: -4") {
		t.Errorf("DebugString() = %q", s)
	}
}
