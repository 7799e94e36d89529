package transport

import (
	"github.com/arkadia-ops/opticore/pkg/apperror"
	"github.com/arkadia-ops/opticore/pkg/numeric"
)

// MaxIterations bounds stepping-stone optimization, matching the cap the
// simplex kernel uses for its own pivot loop.
const MaxIterations = 10000

// cellPos identifies one allocation cell.
type cellPos struct{ i, j int }

// TraceStep records one stepping-stone iteration, when tracing is enabled.
type TraceStep struct {
	Iteration int
	Enter     cellPos
	Cycle     []cellPos
	Theta     float64
	Leaving   cellPos
	TotalCost float64
}

// findClosedPath searches for a closed loop of allocation cells, alternating
// horizontal and vertical moves, that starts and ends at start and visits
// only basic cells (allocation > epsilon) except at start itself. It
// explores depth-first, forbidding two consecutive moves in the same
// direction, and accepts a cycle only once it returns to start with at
// least 4 cells.
func findClosedPath(alloc Allocation, start cellPos) []cellPos {
	rows, cols := len(alloc), len(alloc[0])
	isBasic := func(p cellPos) bool {
		return alloc[p.i][p.j] > numeric.Epsilon
	}

	visited := map[cellPos]bool{start: true}
	path := []cellPos{start}

	var search func(pos cellPos, prevDir byte) []cellPos
	search = func(pos cellPos, prevDir byte) []cellPos {
		if prevDir != 'V' {
			for i := 0; i < rows; i++ {
				if i == pos.i {
					continue
				}
				cand := cellPos{i, pos.j}
				if cand == start && len(path) >= 4 {
					return append(append([]cellPos(nil), path...), start)
				}
				if !visited[cand] && isBasic(cand) {
					visited[cand] = true
					path = append(path, cand)
					if res := search(cand, 'V'); res != nil {
						return res
					}
					path = path[:len(path)-1]
					visited[cand] = false
				}
			}
		}
		if prevDir != 'H' {
			for j := 0; j < cols; j++ {
				if j == pos.j {
					continue
				}
				cand := cellPos{pos.i, j}
				if cand == start && len(path) >= 4 {
					return append(append([]cellPos(nil), path...), start)
				}
				if !visited[cand] && isBasic(cand) {
					visited[cand] = true
					path = append(path, cand)
					if res := search(cand, 'H'); res != nil {
						return res
					}
					path = path[:len(path)-1]
					visited[cand] = false
				}
			}
		}
		return nil
	}

	return search(start, 0)
}

// OptimizeSteppingStone iteratively improves alloc until no empty cell has
// a negative marginal cost, or maxIterations is exhausted. For each empty
// cell it finds the cell's closed path via findClosedPath and computes the
// marginal cost by alternating +cost/-cost around the cycle starting with
// + at the entering cell; the cell with the most negative marginal cost
// (strictly below the running best, which starts at -epsilon) enters. theta is the
// smallest allocation among the cycle's "minus" positions; that cell
// leaves the basis. When trace is true, one TraceStep is recorded per
// iteration, up to traceLimit entries.
func OptimizeSteppingStone(alloc Allocation, costs [][]Cost, maxIterations int, trace bool, traceLimit int) (Allocation, int, []TraceStep, error) {
	if maxIterations <= 0 {
		maxIterations = MaxIterations
	}
	current := alloc.Clone()
	rows, cols := len(current), len(current[0])

	var steps []TraceStep
	iterations := 0

	for iterations < maxIterations {
		bestMarginal := -numeric.Epsilon
		var bestCell cellPos
		var bestCycle []cellPos
		found := false

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if current[i][j] > numeric.Epsilon {
					continue
				}
				start := cellPos{i, j}
				cycle := findClosedPath(current, start)
				if cycle == nil {
					continue
				}
				marginal := marginalCost(cycle, costs)
				if marginal < bestMarginal {
					bestMarginal = marginal
					bestCell = start
					bestCycle = cycle
					found = true
				}
			}
		}

		if !found {
			break
		}

		theta, leaving := theta(current, bestCycle)
		applyCycle(current, bestCycle, theta)
		iterations++

		if trace && len(steps) < traceLimit {
			z, _ := TotalCost(current, costs)
			steps = append(steps, TraceStep{
				Iteration: iterations,
				Enter:     bestCell,
				Cycle:     bestCycle,
				Theta:     theta,
				Leaving:   leaving,
				TotalCost: z,
			})
		}
	}

	if iterations >= maxIterations {
		return current, iterations, steps, apperror.New(apperror.CodeIterationLimit,
			"stepping-stone optimization exceeded the iteration limit without converging").
			WithDetails("iterations", iterations)
	}

	return current, iterations, steps, nil
}

// marginalCost sums cost alternating + at even cycle positions (the
// entering cell, position 0) and - at odd positions.
func marginalCost(cycle []cellPos, costs [][]Cost) float64 {
	var total float64
	n := len(cycle)
	// cycle's last element duplicates the first (closed loop); walk the
	// distinct positions only.
	distinct := cycle
	if n > 1 && cycle[n-1] == cycle[0] {
		distinct = cycle[:n-1]
	}
	for k, p := range distinct {
		c := costs[p.i][p.j].Resolved()
		if k%2 == 0 {
			total += c
		} else {
			total -= c
		}
	}
	return total
}

// theta returns the smallest allocation among the cycle's odd ("minus")
// positions, and the position of the first cell attaining it (the one
// that leaves the basis).
func theta(alloc Allocation, cycle []cellPos) (float64, cellPos) {
	n := len(cycle)
	distinct := cycle
	if n > 1 && cycle[n-1] == cycle[0] {
		distinct = cycle[:n-1]
	}
	best := infinity
	var leaving cellPos
	for k, p := range distinct {
		if k%2 == 0 {
			continue
		}
		v := alloc[p.i][p.j]
		if v < best {
			best = v
			leaving = p
		}
	}
	return best, leaving
}

// applyCycle adds theta at even cycle positions and subtracts it at odd
// positions, clamping any result within epsilon of zero to exactly zero.
func applyCycle(alloc Allocation, cycle []cellPos, theta float64) {
	n := len(cycle)
	distinct := cycle
	if n > 1 && cycle[n-1] == cycle[0] {
		distinct = cycle[:n-1]
	}
	for k, p := range distinct {
		if k%2 == 0 {
			alloc[p.i][p.j] += theta
		} else {
			alloc[p.i][p.j] -= theta
			if alloc[p.i][p.j] < numeric.Epsilon {
				alloc[p.i][p.j] = 0
			}
		}
	}
}
