package poisson

import (
	"math"
	"testing"

	"github.com/katalvlaran/bluenoise/point"
)

//----------------------------------------------------------------------------//
// Grid construction
//----------------------------------------------------------------------------//

// TestNewGrid_Dimensions verifies the cell sizing rule and arena size:
// cellSize = minDist/√2, side = ceil(1/cellSize).
func TestNewGrid_Dimensions(t *testing.T) {
	const minDist = 0.1
	g := newGrid(minDist)

	wantCell := minDist / math.Sqrt2
	if g.cellSize != wantCell {
		t.Errorf("cellSize = %v; want %v", g.cellSize, wantCell)
	}

	wantSide := int(math.Ceil(1 / wantCell))
	if g.side != wantSide {
		t.Errorf("side = %d; want %d", g.side, wantSide)
	}
	if len(g.cells) != wantSide*wantSide {
		t.Errorf("arena size = %d; want %d", len(g.cells), wantSide*wantSide)
	}
}

//----------------------------------------------------------------------------//
// Insert / neighbor query
//----------------------------------------------------------------------------//

// TestGrid_InsertAndQuery verifies that a stored point is reported within
// range and that distant points are not.
func TestGrid_InsertAndQuery(t *testing.T) {
	// 0.125 and 0.625 are exactly representable, so the boundary case
	// below is a true equality, not a rounding accident.
	const minDist = 0.125
	g := newGrid(minDist)

	g.insert(point.New(0.5, 0.5))

	if !g.hasNeighborWithin(point.New(0.505, 0.5), minDist) {
		t.Error("expected neighbor within minDist at 0.005 separation")
	}
	if g.hasNeighborWithin(point.New(0.9, 0.9), minDist) {
		t.Error("unexpected neighbor report at 0.57 separation")
	}
	// Exactly minDist apart is NOT a violation (strictly-closer query).
	if g.hasNeighborWithin(point.New(0.625, 0.5), minDist) {
		t.Error("point at exactly minDist must not count as a neighbor")
	}
}

// TestGrid_LastWriteWins verifies the intentional per-cell overwrite:
// after a second insert into the same cell, the first occupant is gone.
func TestGrid_LastWriteWins(t *testing.T) {
	const minDist = 0.1
	g := newGrid(minDist)

	p1 := point.New(0.500, 0.500)
	p2 := point.New(0.505, 0.505) // same cell as p1 for cellSize ≈ 0.0707

	cx1, cy1 := g.cellOf(p1)
	cx2, cy2 := g.cellOf(p2)
	if cx1 != cx2 || cy1 != cy2 {
		t.Fatalf("test points map to different cells: (%d,%d) vs (%d,%d)", cx1, cy1, cx2, cy2)
	}

	g.insert(p1)
	if !g.hasNeighborWithin(p1, 0.001) {
		t.Fatal("stored point must be its own sub-millimeter neighbor")
	}

	g.insert(p2)
	if g.hasNeighborWithin(p1, 0.001) {
		t.Error("overwritten occupant still reported; last write must win")
	}
}

// TestGrid_EmptyCellsIgnored verifies the Valid sentinel: an empty grid
// reports no neighbors anywhere.
func TestGrid_EmptyCellsIgnored(t *testing.T) {
	g := newGrid(0.2)
	probes := []point.Point{
		point.New(0, 0),
		point.New(0.5, 0.5),
		point.New(1, 1),
	}
	for _, p := range probes {
		if g.hasNeighborWithin(p, 0.2) {
			t.Errorf("empty grid reported a neighbor near %v", p)
		}
	}
}

// TestGrid_DomainEdgeClamps verifies that points on the far domain edge
// land in the last cell instead of indexing out of the arena.
func TestGrid_DomainEdgeClamps(t *testing.T) {
	for _, minDist := range []float64{0.05, 0.1, 0.25, math.Sqrt2 * 0.125, 2.0} {
		g := newGrid(minDist)
		edge := point.New(1, 1)

		g.insert(edge) // must not panic
		if !g.hasNeighborWithin(edge, minDist) {
			t.Errorf("minDist=%v: edge point not found after insert", minDist)
		}
	}
}
