package poisson

import (
	"math"

	"github.com/katalvlaran/bluenoise/point"
)

// cellScanRadius is the half-width, in cells, of the neighbor window.
// The cell sizing below only requires a 1-cell margin; 5 is a deliberate
// conservative margin traded against a constant-factor scan cost.
const cellScanRadius = 5

// grid partitions the unit domain into square cells of side
// minDist/√2, so two points sharing a cell (or adjacent cells) cannot
// both satisfy the minimum-distance constraint. Each cell therefore holds
// at most one legal point, and insert lets later writes win.
//
// Cells live in a single row-major arena scoped to one generation call;
// the zero Point (Valid=false) marks an empty cell.
type grid struct {
	side     int // cells per axis: ceil(1/cellSize)
	cellSize float64
	cells    []point.Point
}

// newGrid builds a grid covering the unit domain for the given spacing.
// Complexity: O(side²) memory.
func newGrid(minDist float64) *grid {
	cellSize := minDist / math.Sqrt2
	side := int(math.Ceil(1 / cellSize))

	return &grid{
		side:     side,
		cellSize: cellSize,
		cells:    make([]point.Point, side*side),
	}
}

// cellOf maps p to integer cell coordinates. Points on the far domain edge
// (X or Y exactly 1 when 1/cellSize is integral) clamp into the last cell.
// Complexity: O(1).
func (g *grid) cellOf(p point.Point) (cx, cy int) {
	cx = int(p.X / g.cellSize)
	if cx >= g.side {
		cx = g.side - 1
	}
	cy = int(p.Y / g.cellSize)
	if cy >= g.side {
		cy = g.side - 1
	}

	return cx, cy
}

// index maps cell coordinates to a row-major arena index.
// Complexity: O(1).
func (g *grid) index(cx, cy int) int {
	return cy*g.side + cx
}

// insert stores p in its cell, overwriting any previous occupant.
// Complexity: O(1).
func (g *grid) insert(p point.Point) {
	cx, cy := g.cellOf(p)
	g.cells[g.index(cx, cy)] = p
}

// hasNeighborWithin reports whether any stored point lies strictly closer
// than minDist to p. It scans the (2·cellScanRadius+1)² cell window around
// p's cell, clipped to the grid bounds; cells outside the window need not
// be consulted thanks to the cell sizing.
// Complexity: O(1) — the window is a fixed 11×11 block.
func (g *grid) hasNeighborWithin(p point.Point, minDist float64) bool {
	cx, cy := g.cellOf(p)
	limit := minDist * minDist

	for i := cx - cellScanRadius; i <= cx+cellScanRadius; i++ {
		if i < 0 || i >= g.side {
			continue
		}
		for j := cy - cellScanRadius; j <= cy+cellScanRadius; j++ {
			if j < 0 || j >= g.side {
				continue
			}
			q := g.cells[g.index(i, j)]
			if q.Valid && point.DistSq(q, p) < limit {
				return true
			}
		}
	}

	return false
}
