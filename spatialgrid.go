package culling

import (
	"math"
	"sort"

	"github.com/akmonengine/culling/volume"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey is the coordinate of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell holds the indices of the objects overlapping it
type Cell struct {
	objectIndices []int
}

// SpatialGrid is a uniform hashed grid used as the culling broad phase
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int

	// objects spanning more cells than the grid holds, tested on every query
	oversized []int
}

// NewSpatialGrid creates a grid of numCells hashed cells, rounded up to a power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].objectIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo rounds n up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert adds the object index to every cell its world bounds occupy.
// Objects with empty bounds are ignored.
func (sg *SpatialGrid) Insert(objectIndex int, object *Object) {
	aabb := object.WorldBounds()
	if aabb.IsEmpty() {
		return
	}

	minCell := sg.worldToCell(aabb.Min)
	maxCell := sg.worldToCell(aabb.Max)
	if sg.cellCount(minCell, maxCell) > len(sg.cells) {
		sg.oversized = append(sg.oversized, objectIndex)
		return
	}

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := sg.hashCell(CellKey{x, y, z})

				sg.cells[cellIdx].objectIndices = append(
					sg.cells[cellIdx].objectIndices,
					objectIndex,
				)
			}
		}
	}
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].objectIndices = sg.cells[i].objectIndices[:0]
	}
	sg.oversized = sg.oversized[:0]
}

// Query returns, in ascending order and without duplicates, the indices of
// objects whose world bounds overlap region.
func (sg *SpatialGrid) Query(region volume.AABB, objects []*Object) []int {
	if region.IsEmpty() {
		return nil
	}

	seen := make([]bool, len(objects))
	indices := make([]int, 0, 16)
	visit := func(idx int) {
		if seen[idx] {
			return
		}
		seen[idx] = true
		if objects[idx].WorldBounds().Overlaps(region) {
			indices = append(indices, idx)
		}
	}

	for _, idx := range sg.oversized {
		visit(idx)
	}

	minCell := sg.worldToCell(region.Min)
	maxCell := sg.worldToCell(region.Max)
	if sg.cellCount(minCell, maxCell) > len(sg.cells) {
		// Walking the region would hash to every cell anyway
		for i := range sg.cells {
			for _, idx := range sg.cells[i].objectIndices {
				visit(idx)
			}
		}
	} else {
		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					for _, idx := range sg.cells[sg.hashCell(CellKey{x, y, z})].objectIndices {
						visit(idx)
					}
				}
			}
		}
	}

	sort.Ints(indices)

	return indices
}

// cellCount returns the number of cells in the box [minCell, maxCell], saturating on overflow
func (sg *SpatialGrid) cellCount(minCell, maxCell CellKey) int {
	count := 1.0
	count *= float64(maxCell.X-minCell.X) + 1
	count *= float64(maxCell.Y-minCell.Y) + 1
	count *= float64(maxCell.Z-minCell.Z) + 1

	if count > math.MaxInt32 {
		return math.MaxInt32
	}

	return int(count)
}

// worldToCell converts a world position to its cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: clampCell(math.Floor(pos.X() / sg.cellSize)),
		Y: clampCell(math.Floor(pos.Y() / sg.cellSize)),
		Z: clampCell(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// clampCell keeps cell coordinates within int32 so that infinite or huge bounds stay well defined.
// NaN maps to cell 0.
func clampCell(c float64) int {
	if math.IsNaN(c) {
		return 0
	}
	return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, c)))
}

// hashCell maps a cell to an index in the cell array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
