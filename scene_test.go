package culling

import (
	"math"
	"testing"

	"github.com/akmonengine/culling/hull"
	"github.com/akmonengine/culling/volume"
	"github.com/go-gl/mathgl/mgl64"
)

// setupScene places unit cubes along -Z and to the sides of the test frustum
func setupScene(workers int) *Scene {
	scene := NewScene(2.0, 256)
	scene.Workers = workers

	scene.AddObject(boxObject("front", -0.5, -0.5, -5.5, 0.5, 0.5, -4.5))
	scene.AddObject(boxObject("behind", -0.5, -0.5, 4.5, 0.5, 0.5, 5.5))
	scene.AddObject(boxObject("edge", 4.5, -0.5, -5.5, 5.5, 0.5, -4.5))
	scene.AddObject(boxObject("far", -0.5, -0.5, -30, 0.5, 0.5, -29))
	scene.AddObject(boxObject("close", -0.5, -0.5, -2.5, 0.5, 0.5, -1.5))
	scene.AddObject(NewObject("empty", volume.NewAABB(), volume.NewTransform()))

	return scene
}

func resultIds(results []Result) []interface{} {
	ids := make([]interface{}, len(results))
	for i, r := range results {
		ids[i] = r.Object.Id
	}

	return ids
}

func assertResults(t *testing.T, results []Result, expected []Result) {
	t.Helper()
	if len(results) != len(expected) {
		t.Fatalf("Got %d results %v, want %d", len(results), resultIds(results), len(expected))
	}
	for i := range expected {
		if results[i].Object != expected[i].Object || results[i].State != expected[i].State {
			t.Errorf("Result %d = {%v %v}, want {%v %v}",
				i, results[i].Object.Id, results[i].State, expected[i].Object.Id, expected[i].State)
		}
	}
}

// =============================================================================
// Cull Tests
// =============================================================================

func TestSceneCull(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 16} {
		scene := setupScene(workers)
		f := testFrustum(t)

		results := scene.Cull(f.ConvexHull)

		assertResults(t, results, []Result{
			{Object: scene.Objects[0], State: hull.Inside},
			{Object: scene.Objects[2], State: hull.Intersection},
			{Object: scene.Objects[4], State: hull.Inside},
		})
	}
}

func TestSceneCullFrustum_MatchesCull(t *testing.T) {
	scene := setupScene(4)
	f := testFrustum(t)

	brute := scene.Cull(f.ConvexHull)
	broad := scene.CullFrustum(f)

	assertResults(t, broad, brute)
}

func TestSceneCullFrustum_SubsetOfCull(t *testing.T) {
	scene := NewScene(1.0, 64)
	// Beyond the far right edge: it straddles the right and far planes,
	// only the frustum bounds reject it
	scene.AddObject(boxObject("corner", 10.5, -0.5, -11, 11.5, 0.5, -9.5))
	f := testFrustum(t)

	if got := scene.Cull(f.ConvexHull); len(got) != 1 {
		t.Fatalf("Cull() = %v, the plane tests alone should keep the box", resultIds(got))
	}
	if got := scene.CullFrustum(f); len(got) != 0 {
		t.Errorf("CullFrustum() = %v, want none", resultIds(got))
	}
}

func TestSceneCull_EmptyHull(t *testing.T) {
	scene := setupScene(2)

	results := scene.Cull(hull.NewConvexHull())
	if len(results) != len(scene.Objects)-1 {
		t.Errorf("Got %v, every non-empty object should be visible", resultIds(results))
	}
	for _, r := range results {
		if r.State != hull.Inside {
			t.Errorf("%v state = %v, want Inside", r.Object.Id, r.State)
		}
	}
}

func TestSceneCull_NaNBoundsNeverVisible(t *testing.T) {
	scene := NewScene(1.0, 64)
	nan := math.NaN()
	scene.AddObject(boxObject("nan", -0.5, nan, -5.5, 0.5, 0.5, -4.5))
	scene.AddObject(boxObject("front", -0.5, -0.5, -5.5, 0.5, 0.5, -4.5))
	f := testFrustum(t)

	for _, results := range [][]Result{
		scene.Cull(hull.NewConvexHull()),
		scene.Cull(f.ConvexHull),
		scene.CullFrustum(f),
	} {
		assertResults(t, results, []Result{{Object: scene.Objects[1], State: hull.Inside}})
	}
}

// =============================================================================
// Object Tests
// =============================================================================

func TestSceneUpdate(t *testing.T) {
	scene := setupScene(2)
	f := testFrustum(t)

	behind := scene.Objects[1]
	behind.Bounds = volume.NewAABBFromBounds(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5)
	behind.Transform.Position = mgl64.Vec3{0, 0, -10}
	behind.Transform.Rotation = mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})
	scene.Update()

	bounds := behind.WorldBounds()
	half := math.Sqrt2 / 2
	expected := volume.NewAABBFromBounds(-half, -0.5, -10-half, half, 0.5, -10+half)
	if !nearVec3(bounds.Min, expected.Min) || !nearVec3(bounds.Max, expected.Max) {
		t.Errorf("WorldBounds() = %v, want %v", bounds, expected)
	}

	results := scene.Cull(f.ConvexHull)
	if len(results) != 4 {
		t.Errorf("Got %v, the moved object should now be visible", resultIds(results))
	}
}

func TestSceneRemoveObject(t *testing.T) {
	scene := setupScene(1)
	front := scene.Objects[0]

	scene.RemoveObject(front)
	if len(scene.Objects) != 5 {
		t.Fatalf("len(Objects) = %d, want 5", len(scene.Objects))
	}
	for _, o := range scene.Objects {
		if o == front {
			t.Fatal("Removed object still in scene")
		}
	}

	// Removing an unknown object is a no-op
	scene.RemoveObject(boxObject("ghost", 0, 0, 0, 1, 1, 1))
	if len(scene.Objects) != 5 {
		t.Errorf("len(Objects) = %d, want 5", len(scene.Objects))
	}
}
