package lp

import "github.com/arkadia-ops/opticore/pkg/numeric"

// BigM is the artificial-variable penalty coefficient for the Big-M
// method, per §4.4.
const BigM = 1e6

// buildBigMTableau constructs the same slack/surplus/artificial layout as
// buildTwoPhaseTableau, but row 0 carries the real objective with
// artificials penalised by +BigM, restored to canonical form in one pass
// (no separate Phase I).
func buildBigMTableau(m *Model) (Tableau, twoPhaseLayout) {
	t, layout := buildTwoPhaseTableau(m)

	width := t.cols()
	sign := 1.0
	if m.Sense == Minimize {
		sign = -1.0
	}
	for j := 0; j < width; j++ {
		t[0][j] = 0
	}
	for j, c := range m.C {
		t[0][j] = -sign * c
	}
	for _, col := range layout.artCols {
		t[0][col] = BigM
	}

	for row, col := range layout.basis {
		factor := t[0][col]
		if numeric.IsZero(factor) {
			continue
		}
		for j := 0; j < width; j++ {
			t[0][j] -= factor * t[row+1][j]
		}
	}

	return t, layout
}

// solveBigM runs a single-phase Big-M solve and packages the result.
func solveBigM(m *Model, recordHistory bool) (*Solution, error) {
	t, layout := buildBigMTableau(m)

	var history []IterationSnapshot
	var historyPtr *[]IterationSnapshot
	if recordHistory {
		historyPtr = &history
	}

	result, iterations, err := simplexMax(t, layout.basis, historyPtr)
	if err != nil {
		return nil, err
	}

	n := m.NumVars()
	if result == resultUnbounded {
		return &Solution{
			Status:     StatusUnbounded,
			X:          make([]float64, n),
			Iterations: iterations,
			Message:    "problem is unbounded",
			MethodUsed: "big_m",
		}, nil
	}

	rhsCol := t.cols() - 1
	for row := 1; row < t.rows(); row++ {
		if contains(layout.artCols, layout.basis[row-1]) && t[row][rhsCol] > 1e-7 {
			return &Solution{
				Status:     StatusInfeasible,
				X:          make([]float64, n),
				Iterations: iterations,
				Message:    "no feasible solution satisfies all constraints",
				MethodUsed: "big_m",
			}, nil
		}
	}

	x := extractSolution(t, layout.basis, n)
	obj := t[0][rhsCol]
	if m.Sense == Minimize {
		obj = -obj
	}

	sol := &Solution{
		Status:         StatusOptimal,
		X:              x,
		ObjectiveValue: obj,
		Iterations:     iterations,
		Message:        "optimal solution found",
		MethodUsed:     "big_m",
		Slacks:         constraintSlacks(m, x),
	}
	sol.Extra = &Extra{Tableau: t, Basis: layout.basis, Row0: append([]float64(nil), t[0]...), History: history}
	return sol, nil
}
