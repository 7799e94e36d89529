package lp

import "github.com/arkadia-ops/opticore/pkg/numeric"

// normalizedConstraint is a constraint after the sign-flip normalisation
// that guarantees non-negative RHS (flipping a row also inverts <= / >=).
type normalizedConstraint struct {
	A  []float64
	Op Op
	B  float64
}

// normalizeConstraints flips any row with negative RHS, per section 4.3:
// multiplying by -1 inverts <= to >= and vice versa; = stays =.
func normalizeConstraints(constraints []Constraint) []normalizedConstraint {
	out := make([]normalizedConstraint, len(constraints))
	for i, c := range constraints {
		if c.B >= 0 {
			out[i] = normalizedConstraint{A: c.A, Op: c.Op, B: c.B}
			continue
		}
		flippedA := make([]float64, len(c.A))
		for j, v := range c.A {
			flippedA[j] = -v
		}
		op := c.Op
		switch op {
		case LessEqual:
			op = GreaterEqual
		case GreaterEqual:
			op = LessEqual
		}
		out[i] = normalizedConstraint{A: flippedA, Op: op, B: -c.B}
	}
	return out
}

// twoPhaseLayout describes the column layout derived from a normalized
// constraint set: how many slack/surplus/artificial columns are needed and
// where each constraint's basic variable and artificial (if any) land.
type twoPhaseLayout struct {
	n            int // original variables
	slackCount   int
	surplusCount int
	artCount     int
	basis        []int   // initial basic column per row
	artRows      []int   // rows that carry an artificial (by row index, 1-based into tableau)
	artCols      []int   // corresponding artificial columns
}

func buildTwoPhaseLayout(constraints []normalizedConstraint, n int) twoPhaseLayout {
	layout := twoPhaseLayout{n: n, basis: make([]int, len(constraints))}
	for _, c := range constraints {
		switch c.Op {
		case LessEqual:
			layout.slackCount++
		case GreaterEqual:
			layout.surplusCount++
			layout.artCount++
		case Equal:
			layout.artCount++
		}
	}
	return layout
}

// buildTwoPhaseTableau constructs the Phase-I tableau: slack/surplus columns
// per §4.3, one artificial column per >= or = row, and row 0 set to
// maximise -sum(artificials), already restored to canonical form.
func buildTwoPhaseTableau(m *Model) (Tableau, twoPhaseLayout) {
	normalized := normalizeConstraints(m.Constraints)
	n := m.NumVars()
	layout := buildTwoPhaseLayout(normalized, n)

	totalCols := n + layout.slackCount + layout.surplusCount + layout.artCount + 1
	rows := len(normalized)
	t := make(Tableau, rows+1)
	for i := range t {
		t[i] = make([]float64, totalCols)
	}

	slackIdx := n
	surplusIdx := n + layout.slackCount
	artIdx := n + layout.slackCount + layout.surplusCount

	for i, c := range normalized {
		row := t[i+1]
		copy(row[:n], c.A)
		row[totalCols-1] = c.B

		switch c.Op {
		case LessEqual:
			row[slackIdx] = 1
			layout.basis[i] = slackIdx
			slackIdx++
		case GreaterEqual:
			row[surplusIdx] = -1
			surplusIdx++
			row[artIdx] = 1
			layout.basis[i] = artIdx
			layout.artRows = append(layout.artRows, i+1)
			layout.artCols = append(layout.artCols, artIdx)
			artIdx++
		case Equal:
			row[artIdx] = 1
			layout.basis[i] = artIdx
			layout.artRows = append(layout.artRows, i+1)
			layout.artCols = append(layout.artCols, artIdx)
			artIdx++
		}
	}

	for _, col := range layout.artCols {
		t[0][col] = 1
	}
	for _, row := range layout.artRows {
		basisCol := layout.basis[row-1]
		if !contains(layout.artCols, basisCol) {
			continue
		}
		factor := t[0][basisCol]
		for j := 0; j < totalCols; j++ {
			t[0][j] -= factor * t[row][j]
		}
	}

	return t, layout
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// phaseIFeasible runs phase I to completion and reports whether the result
// is feasible: the Phase-I objective must be ~0 and no artificial may
// remain basic at a strictly positive value.
func phaseIFeasible(t Tableau, layout twoPhaseLayout, history *[]IterationSnapshot) (bool, int, error) {
	result, iterations, err := simplexMax(t, layout.basis, history)
	if err != nil {
		return false, iterations, err
	}
	if result == resultUnbounded {
		// Phase I (maximize -sum artificials, capped at 0) cannot be
		// unbounded by construction; treat defensively as infeasible.
		return false, iterations, nil
	}

	rhsCol := t.cols() - 1
	if !numeric.FloatEquals(t[0][rhsCol], 0) && t[0][rhsCol] < -1e-7 {
		return false, iterations, nil
	}
	for row := 1; row < t.rows(); row++ {
		if contains(layout.artCols, layout.basis[row-1]) && t[row][rhsCol] > 1e-7 {
			return false, iterations, nil
		}
	}

	driveOutZeroArtificials(t, layout)
	return true, iterations, nil
}

// driveOutZeroArtificials pivots any artificial that remains basic at a
// zero RHS out of the basis via any non-artificial column with a non-zero
// coefficient in its row. If no such column exists the artificial stays
// degenerate-basic, which is harmless (§4.3).
func driveOutZeroArtificials(t Tableau, layout twoPhaseLayout) {
	for row := 1; row < t.rows(); row++ {
		col := layout.basis[row-1]
		if !contains(layout.artCols, col) {
			continue
		}
		for j := 0; j < layout.n+layout_slackSurplus(layout); j++ {
			if contains(layout.artCols, j) {
				continue
			}
			if !numeric.IsZero(t[row][j]) {
				if pivot(t, row, j) == nil {
					layout.basis[row-1] = j
				}
				break
			}
		}
	}
}

func layout_slackSurplus(layout twoPhaseLayout) int {
	return layout.slackCount + layout.surplusCount
}

// stripArtificialColumns deletes every artificial column from t and
// rewrites basis entries to account for the removed columns, returning the
// reindexed tableau and basis ready for Phase II.
func stripArtificialColumns(t Tableau, layout twoPhaseLayout) (Tableau, []int) {
	rhsCol := t.cols() - 1
	keep := make([]int, 0, rhsCol)
	for j := 0; j < rhsCol; j++ {
		if !contains(layout.artCols, j) {
			keep = append(keep, j)
		}
	}

	remap := make(map[int]int, len(keep))
	for newIdx, oldIdx := range keep {
		remap[oldIdx] = newIdx
	}

	out := make(Tableau, t.rows())
	for i, row := range t {
		newRow := make([]float64, len(keep)+1)
		for newIdx, oldIdx := range keep {
			newRow[newIdx] = row[oldIdx]
		}
		newRow[len(newRow)-1] = row[rhsCol]
		out[i] = newRow
	}

	newBasis := make([]int, len(layout.basis))
	for i, col := range layout.basis {
		newBasis[i] = remap[col]
	}

	return out, newBasis
}

// rebuildPhaseTwoObjective resets row 0 to the real objective (negated for
// maximisation bookkeeping) and restores canonical form against the
// current basis.
func rebuildPhaseTwoObjective(t Tableau, basis []int, c []float64, sense Sense) {
	n := len(c)
	width := t.cols()
	for j := 0; j < width; j++ {
		t[0][j] = 0
	}
	sign := 1.0
	if sense == Minimize {
		sign = -1.0
	}
	for j := 0; j < n; j++ {
		t[0][j] = -sign * c[j]
	}

	for row, col := range basis {
		factor := t[0][col]
		if numeric.IsZero(factor) {
			continue
		}
		for j := 0; j < width; j++ {
			t[0][j] -= factor * t[row+1][j]
		}
	}
}

// solveTwoPhase runs Phase I (feasibility via artificial variables) then
// Phase II (optimise the real objective) and packages the result.
func solveTwoPhase(m *Model, recordHistory bool) (*Solution, error) {
	t, layout := buildTwoPhaseTableau(m)

	var history []IterationSnapshot
	var historyPtr *[]IterationSnapshot
	if recordHistory {
		historyPtr = &history
	}

	n := m.NumVars()
	iter1 := 0

	if layout.artCount > 0 {
		var feasible bool
		var err error
		feasible, iter1, err = phaseIFeasible(t, layout, historyPtr)
		if err != nil {
			return nil, err
		}
		if !feasible {
			return &Solution{
				Status:     StatusInfeasible,
				X:          make([]float64, n),
				Iterations: iter1,
				Message:    "no feasible solution satisfies all constraints",
				MethodUsed: "two_phase",
			}, nil
		}

		t, layout.basis = stripArtificialColumns(t, layout)
	}

	rebuildPhaseTwoObjective(t, layout.basis, m.C, m.Sense)

	result, iter2, err := simplexMax(t, layout.basis, historyPtr)
	if err != nil {
		return nil, err
	}

	totalIterations := iter1 + iter2

	if result == resultUnbounded {
		return &Solution{
			Status:     StatusUnbounded,
			X:          make([]float64, n),
			Iterations: totalIterations,
			Message:    "problem is unbounded",
			MethodUsed: "two_phase",
		}, nil
	}

	x := extractSolution(t, layout.basis, n)
	obj := t[0][t.cols()-1]
	if m.Sense == Minimize {
		obj = -obj
	}

	sol := &Solution{
		Status:         StatusOptimal,
		X:              x,
		ObjectiveValue: obj,
		Iterations:     totalIterations,
		Message:        "optimal solution found",
		MethodUsed:     "two_phase",
		Slacks:         constraintSlacks(m, x),
	}
	sol.Extra = &Extra{Tableau: t, Basis: layout.basis, Row0: append([]float64(nil), t[0]...), History: history}
	return sol, nil
}
