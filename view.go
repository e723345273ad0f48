package culling

import (
	"sync/atomic"

	"github.com/akmonengine/culling/hull"
)

// View publishes immutable hull snapshots to concurrent readers.
// A writer builds a new hull each frame and publishes it, readers Load the
// latest snapshot and query it without locking. The zero value is ready to use.
type View struct {
	current atomic.Pointer[hull.ConvexHull]
}

// Publish stores a copy of h, so the caller may keep mutating its own hull
func (v *View) Publish(h *hull.ConvexHull) {
	v.current.Store(h.Clone())
}

// Load returns the latest snapshot, or an empty hull if nothing was published.
// The snapshot is shared and must not be mutated.
func (v *View) Load() *hull.ConvexHull {
	if h := v.current.Load(); h != nil {
		return h
	}

	return hull.NewConvexHull()
}
