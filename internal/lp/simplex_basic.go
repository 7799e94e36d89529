package lp

// isSimplexBasicEligible reports whether m can be solved with the canonical
// all-slack tableau: every constraint must be <= with a non-negative RHS.
func isSimplexBasicEligible(m *Model) bool {
	for _, c := range m.Constraints {
		if c.Op != LessEqual || c.B < 0 {
			return false
		}
	}
	return true
}

// buildSimplexBasic constructs the canonical tableau for an all-<=,
// non-negative-RHS model: one slack column per constraint, each slack
// starting basic.
func buildSimplexBasic(m *Model) (Tableau, []int) {
	n := m.NumVars()
	rows := len(m.Constraints)
	cols := n + rows + 1 // vars, slacks, RHS

	t := make(Tableau, rows+1)
	for i := range t {
		t[i] = make([]float64, cols)
	}

	sign := 1.0
	if m.Sense == Minimize {
		sign = -1.0
	}
	for j, c := range m.C {
		t[0][j] = -sign * c
	}

	basis := make([]int, rows)
	for i, constraint := range m.Constraints {
		row := t[i+1]
		copy(row[:n], constraint.A)
		slackCol := n + i
		row[slackCol] = 1
		row[cols-1] = constraint.B
		basis[i] = slackCol
	}

	return t, basis
}

// solveSimplexBasic runs the canonical tableau to completion and packages
// the result, negating the objective back for a Minimize model.
func solveSimplexBasic(m *Model, recordHistory bool) (*Solution, error) {
	t, basis := buildSimplexBasic(m)

	var history []IterationSnapshot
	var historyPtr *[]IterationSnapshot
	if recordHistory {
		historyPtr = &history
	}

	result, iterations, err := simplexMax(t, basis, historyPtr)
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
			MethodUsed: "simplex",
		}, nil
	}

	x := extractSolution(t, basis, n)
	obj := t[0][t.cols()-1]
	if m.Sense == Minimize {
		obj = -obj
	}

	sol := &Solution{
		Status:         StatusOptimal,
		X:              x,
		ObjectiveValue: obj,
		Iterations:     iterations,
		Message:        "optimal solution found",
		MethodUsed:     "simplex",
		Slacks:         constraintSlacks(m, x),
	}
	sol.Extra = &Extra{Tableau: t, Basis: basis, Row0: append([]float64(nil), t[0]...), History: history}
	return sol, nil
}

// extractSolution reads the first n variable values out of a terminal
// tableau: a basic variable's value is its row's RHS, a nonbasic variable
// is implicitly zero.
func extractSolution(t Tableau, basis []int, n int) []float64 {
	x := make([]float64, n)
	rhsCol := t.cols() - 1
	for row, col := range basis {
		if col < n {
			x[col] = t[row+1][rhsCol]
		}
	}
	return x
}

// constraintSlacks computes the per-constraint slack of x against m: for
// <=, b - a·x; for >=, a·x - b; for =, always 0.
func constraintSlacks(m *Model, x []float64) []float64 {
	slacks := make([]float64, len(m.Constraints))
	for i, c := range m.Constraints {
		ax := dot(c.A, x)
		switch c.Op {
		case LessEqual:
			slacks[i] = c.B - ax
		case GreaterEqual:
			slacks[i] = ax - c.B
		default:
			slacks[i] = 0
		}
	}
	return slacks
}

func dot(a, x []float64) float64 {
	var sum float64
	for i, v := range a {
		sum += v * x[i]
	}
	return sum
}
