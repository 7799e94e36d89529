package lp

import (
	"fmt"

	"github.com/arkadia-ops/opticore/pkg/apperror"
	"github.com/arkadia-ops/opticore/pkg/numeric"
)

// Tableau is a dense simplex tableau: m+1 rows (row 0 is reduced costs,
// rows 1..m are constraints) by totalCols+1 columns (the last column is
// the right-hand side). Column layout is always original variables, then
// slacks, then surpluses, then artificials.
type Tableau [][]float64

// Clone returns a deep copy of the tableau, used for history snapshots so
// later pivots don't mutate a recorded iteration.
func (t Tableau) Clone() Tableau {
	clone := make(Tableau, len(t))
	for i, row := range t {
		clone[i] = append([]float64(nil), row...)
	}
	return clone
}

func (t Tableau) rows() int { return len(t) }
func (t Tableau) cols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// pivot normalises row by its entry at col, then eliminates col from every
// other row. The pivot element must exceed numeric.Epsilon in magnitude;
// callers are responsible for choosing a non-degenerate pivot (choose_leaving
// never returns a row whose entry is that small).
func pivot(t Tableau, row, col int) error {
	pivotVal := t[row][col]
	if numeric.IsZero(pivotVal) {
		return apperror.New(apperror.CodeNumericInstability,
			fmt.Sprintf("pivot element at row %d col %d is degenerate (%.3e)", row, col, pivotVal))
	}

	width := t.cols()
	for j := 0; j < width; j++ {
		t[row][j] /= pivotVal
	}
	t[row][col] = 1 // guard against residual floating point drift

	for i := 0; i < t.rows(); i++ {
		if i == row {
			continue
		}
		factor := t[i][col]
		if numeric.IsZero(factor) {
			continue
		}
		for j := 0; j < width; j++ {
			t[i][j] -= factor * t[row][j]
		}
		t[i][col] = 0
	}
	return nil
}

// chooseEntering scans row 0 (excluding the RHS column) for the most
// negative entry, returning -1 when every entry is >= -Epsilon (optimal).
// Ties are broken by lowest column index, matching iteration order.
func chooseEntering(t Tableau) int {
	row0 := t[0]
	rhsCol := t.cols() - 1
	best := -1
	bestVal := -numeric.Epsilon
	for j := 0; j < rhsCol; j++ {
		if row0[j] < bestVal {
			bestVal = row0[j]
			best = j
		}
	}
	return best
}

// chooseLeaving runs the minimum-ratio test on the entering column,
// returning -1 when no row has a positive entry there (unbounded). Ties are
// broken by lowest row index.
func chooseLeaving(t Tableau, col int) int {
	rhsCol := t.cols() - 1
	best := -1
	bestRatio := numeric.Infinity
	for i := 1; i < t.rows(); i++ {
		entry := t[i][col]
		if !numeric.IsPositive(entry) {
			continue
		}
		ratio := t[i][rhsCol] / entry
		if ratio < bestRatio-numeric.Epsilon {
			bestRatio = ratio
			best = i
		}
	}
	return best
}

// MaxIterations is the hard cap on simplex pivots before a solve is
// abandoned as numerically unstable (cycling). It is a fixed constant:
// pkg/config's SolverConfig.LP.MaxIterations is validated but not applied.
const MaxIterations = 10000

// simplexResult is the outcome of running simplexMax to completion.
type simplexResult int

const (
	resultOptimal simplexResult = iota
	resultUnbounded
)

// simplexMax iterates entering/leaving/pivot on t (basis is mutated in
// place) until optimality or unboundedness. history, when non-nil, receives
// a deep-copied snapshot before every pivot.
func simplexMax(t Tableau, basis []int, history *[]IterationSnapshot) (simplexResult, int, error) {
	iterations := 0
	for {
		enter := chooseEntering(t)
		if enter == -1 {
			return resultOptimal, iterations, nil
		}

		leave := chooseLeaving(t, enter)
		if leave == -1 {
			return resultUnbounded, iterations, nil
		}

		if history != nil {
			*history = append(*history, IterationSnapshot{
				Tableau:    t.Clone(),
				Basis:      append([]int(nil), basis...),
				Entering:   enter,
				Leaving:    leave,
				LeavingVar: basis[leave-1],
				PivotValue: t[leave][enter],
				Description: fmt.Sprintf("pivot on row %d, col %d (value %.6f)",
					leave, enter+1, t[leave][enter]),
			})
		}

		if err := pivot(t, leave, enter); err != nil {
			return resultOptimal, iterations, err
		}
		basis[leave-1] = enter

		iterations++
		if iterations > MaxIterations {
			return resultOptimal, iterations, apperror.New(apperror.CodeNumericInstability,
				fmt.Sprintf("simplex exceeded %d iterations without converging", MaxIterations)).
				WithDetails("iterations", iterations)
		}
	}
}
