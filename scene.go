package culling

import (
	"github.com/akmonengine/culling/hull"
)

const DEFAULT_WORKERS = 1

// Result is an object that survived culling, with how it relates to the hull
type Result struct {
	Object *Object
	State  hull.IntersectionState
}

type Scene struct {
	// List of all cullable objects
	Objects     []*Object
	SpatialGrid *SpatialGrid
	Workers     int

	Events Events
}

// NewScene creates an empty scene whose broad phase uses a grid of numCells cells of cellSize
func NewScene(cellSize float64, numCells int) *Scene {
	return &Scene{
		SpatialGrid: NewSpatialGrid(cellSize, numCells),
		Workers:     DEFAULT_WORKERS,
		Events:      NewEvents(),
	}
}

// AddObject adds an object to the scene
func (s *Scene) AddObject(object *Object) {
	s.Objects = append(s.Objects, object)
}

// RemoveObject removes an object from the scene
func (s *Scene) RemoveObject(object *Object) {
	k := -1
	for i, o := range s.Objects {
		if o == object {
			k = i
			break
		}
	}

	if k != -1 {
		s.Objects = append(s.Objects[:k], s.Objects[k+1:]...)
	}

	s.Events.forget(object)
}

// Update recomputes the world bounds of every object
func (s *Scene) Update() {
	task(s.workers(), s.Objects, func(_ int, object *Object) {
		object.ComputeWorldBounds()
	})
}

// Cull tests every object against h and returns those not Outside, in scene order.
// Objects with empty bounds are never visible.
func (s *Scene) Cull(h *hull.ConvexHull) []Result {
	results := s.narrowPhase(h, s.Objects)

	s.Events.recordVisible(results)
	s.Events.flush()

	return results
}

// CullFrustum restricts the hull tests to objects the spatial grid finds
// overlapping the frustum bounds. It returns a subset of Cull for the same frustum:
// boxes off the corners of the frustum that the plane tests alone cannot reject
// are dropped here.
func (s *Scene) CullFrustum(frustum *Frustum) []Result {
	s.SpatialGrid.Clear()
	for i, object := range s.Objects {
		s.SpatialGrid.Insert(i, object)
	}

	indices := s.SpatialGrid.Query(frustum.Bounds, s.Objects)
	candidates := make([]*Object, len(indices))
	for i, idx := range indices {
		candidates[i] = s.Objects[idx]
	}

	results := s.narrowPhase(frustum.ConvexHull, candidates)

	s.Events.recordVisible(results)
	s.Events.flush()

	return results
}

func (s *Scene) narrowPhase(h *hull.ConvexHull, objects []*Object) []Result {
	states := make([]hull.IntersectionState, len(objects))
	task(s.workers(), objects, func(i int, object *Object) {
		bounds := object.WorldBounds()
		if bounds.IsEmpty() {
			states[i] = hull.Outside
			return
		}
		states[i] = h.IntersectAABB(bounds)
	})

	results := make([]Result, 0, len(objects))
	for i, state := range states {
		if state != hull.Outside {
			results = append(results, Result{Object: objects[i], State: state})
		}
	}

	return results
}

func (s *Scene) workers() int {
	return max(DEFAULT_WORKERS, s.Workers)
}
