package transport

import (
	"sort"

	"github.com/arkadia-ops/opticore/pkg/numeric"
)

// NorthwestCorner builds an initial basic feasible solution by always
// filling the current top-left active cell to the limit of whichever of
// its row or column runs out first, advancing that side (or both, on a
// simultaneous tie) to the next cell.
func NorthwestCorner(supply, demand []float64) Allocation {
	rows, cols := len(supply), len(demand)
	alloc := newAllocation(rows, cols)

	s := append([]float64(nil), supply...)
	d := append([]float64(nil), demand...)

	i, j := 0, 0
	for i < rows && j < cols {
		qty := min2(s[i], d[j])
		alloc[i][j] = qty
		s[i] -= qty
		d[j] -= qty

		switch {
		case s[i] <= numeric.Epsilon && d[j] <= numeric.Epsilon:
			i++
			j++
		case s[i] <= numeric.Epsilon:
			i++
		default:
			j++
		}
	}
	return alloc
}

// LeastCost builds an initial basic feasible solution by sorting every
// cell ascending by cost and greedily allocating as much as the
// remaining row/column capacity allows, skipping cells whose row or
// column is already exhausted.
func LeastCost(supply, demand []float64, costs [][]Cost) Allocation {
	rows, cols := len(supply), len(demand)
	alloc := newAllocation(rows, cols)

	s := append([]float64(nil), supply...)
	d := append([]float64(nil), demand...)

	type cell struct {
		cost float64
		i, j int
	}
	cells := make([]cell, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cells = append(cells, cell{cost: costs[i][j].Resolved(), i: i, j: j})
		}
	}
	sort.Slice(cells, func(a, b int) bool {
		if cells[a].cost != cells[b].cost {
			return cells[a].cost < cells[b].cost
		}
		if cells[a].i != cells[b].i {
			return cells[a].i < cells[b].i
		}
		return cells[a].j < cells[b].j
	})

	for _, c := range cells {
		if s[c.i] <= numeric.Epsilon || d[c.j] <= numeric.Epsilon {
			continue
		}
		qty := min2(s[c.i], d[c.j])
		alloc[c.i][c.j] += qty
		s[c.i] -= qty
		d[c.j] -= qty
	}
	return alloc
}

// VogelApproximation builds an initial basic feasible solution using
// Vogel's penalty method: repeatedly compute, for every active row and
// column, the penalty (the difference between its two lowest costs among
// still-active cells, or the single remaining cost if only one is left),
// pick the row or column with the greatest penalty (ties favour rows),
// allocate as much as possible at the minimum-cost cell within it, and
// close any row/column whose remaining supply/demand has fallen to zero.
// A residual-fill safety net covers any cell the penalty loop leaves
// unallocated because of a floating point edge case.
func VogelApproximation(supply, demand []float64, costs [][]Cost) Allocation {
	rows, cols := len(supply), len(demand)
	alloc := newAllocation(rows, cols)

	s := append([]float64(nil), supply...)
	d := append([]float64(nil), demand...)
	rowActive := make([]bool, rows)
	colActive := make([]bool, cols)
	for i := range rowActive {
		rowActive[i] = true
	}
	for j := range colActive {
		colActive[j] = true
	}

	activeRows := func() int {
		n := 0
		for _, a := range rowActive {
			if a {
				n++
			}
		}
		return n
	}
	activeCols := func() int {
		n := 0
		for _, a := range colActive {
			if a {
				n++
			}
		}
		return n
	}

	rowPenalty := func(i int) float64 {
		if !rowActive[i] {
			return -1.0
		}
		lo1, lo2 := infinity, infinity
		for j := 0; j < cols; j++ {
			if !colActive[j] {
				continue
			}
			c := costs[i][j].Resolved()
			if c < lo1 {
				lo2 = lo1
				lo1 = c
			} else if c < lo2 {
				lo2 = c
			}
		}
		if lo1 == infinity {
			return -1.0
		}
		if lo2 == infinity {
			return lo1
		}
		return lo2 - lo1
	}

	colPenalty := func(j int) float64 {
		if !colActive[j] {
			return -1.0
		}
		lo1, lo2 := infinity, infinity
		for i := 0; i < rows; i++ {
			if !rowActive[i] {
				continue
			}
			c := costs[i][j].Resolved()
			if c < lo1 {
				lo2 = lo1
				lo1 = c
			} else if c < lo2 {
				lo2 = c
			}
		}
		if lo1 == infinity {
			return -1.0
		}
		if lo2 == infinity {
			return lo1
		}
		return lo2 - lo1
	}

	minCostCellInRow := func(i int) int {
		best, bestCost := -1, infinity
		for j := 0; j < cols; j++ {
			if !colActive[j] {
				continue
			}
			c := costs[i][j].Resolved()
			if c < bestCost {
				bestCost = c
				best = j
			}
		}
		return best
	}
	minCostCellInCol := func(j int) int {
		best, bestCost := -1, infinity
		for i := 0; i < rows; i++ {
			if !rowActive[i] {
				continue
			}
			c := costs[i][j].Resolved()
			if c < bestCost {
				bestCost = c
				best = i
			}
		}
		return best
	}

	for activeRows() > 0 && activeCols() > 0 && activeRows()+activeCols()-1 > 0 {
		maxR, maxRIdx := -1.0, -1
		for i := 0; i < rows; i++ {
			p := rowPenalty(i)
			if p > maxR {
				maxR = p
				maxRIdx = i
			}
		}
		maxC, maxCIdx := -1.0, -1
		for j := 0; j < cols; j++ {
			p := colPenalty(j)
			if p > maxC {
				maxC = p
				maxCIdx = j
			}
		}

		if maxR < 0 && maxC < 0 {
			break
		}

		var i, j int
		if maxR >= maxC {
			i = maxRIdx
			j = minCostCellInRow(i)
		} else {
			j = maxCIdx
			i = minCostCellInCol(j)
		}
		if i < 0 || j < 0 {
			break
		}

		qty := min2(s[i], d[j])
		alloc[i][j] += qty
		s[i] -= qty
		d[j] -= qty

		if s[i] <= numeric.Epsilon {
			rowActive[i] = false
		}
		if d[j] <= numeric.Epsilon {
			colActive[j] = false
		}
	}

	fillResidual(alloc, s, d)
	return alloc
}

const infinity = 1e308

func newAllocation(rows, cols int) Allocation {
	alloc := make(Allocation, rows)
	for i := range alloc {
		alloc[i] = make([]float64, cols)
	}
	return alloc
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// fillResidual covers any leftover supply/demand the penalty loop did not
// fully consume, a safety net against floating point edge cases leaving
// a fractional unit unallocated.
func fillResidual(alloc Allocation, s, d []float64) {
	for i := range s {
		for j := range d {
			if s[i] <= numeric.Epsilon || d[j] <= numeric.Epsilon {
				continue
			}
			qty := min2(s[i], d[j])
			alloc[i][j] += qty
			s[i] -= qty
			d[j] -= qty
		}
	}
}
