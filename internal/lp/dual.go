package lp

// DualSolution is the result of solving an LP's dual: the shadow price of
// each original primal constraint, plus the dual's own objective value
// (equal to the primal's at optimality).
type DualSolution struct {
	ShadowPrices   []float64
	ObjectiveValue float64
	Status         Status
	Iterations     int
}

// dualVarExpansion describes how one primal constraint's dual variable is
// represented in the expanded (all non-negative) dual model: either a
// single non-negative variable (possibly negated), or a free variable
// split into y+ - y-.
type dualVarExpansion struct {
	terms []dualTerm
}

type dualTerm struct {
	col  int
	sign float64 // contributes sign * y'_col to the original dual variable
}

// BuildDual constructs the dual of m per §4.5: primal row sense/operator
// determines each dual variable's domain (non-negative, non-positive, or
// free-via-split), and the dual's objective/constraint coefficients follow
// the standard max/min row exchange.
//
// Free primal variables are out of scope (§1 Non-goals) and Model has no
// representation for one, so this builder has no branch for that case —
// the ambiguity the original source leaves undefined simply cannot arise.
func BuildDual(m *Model) (*Model, []dualVarExpansion) {
	normalized := normalizeConstraints(m.Constraints)
	n := m.NumVars()

	expansions := make([]dualVarExpansion, len(normalized))
	dualC := make([]float64, 0, len(normalized)*2)
	colOf := make([][]int, len(normalized))

	for i, c := range normalized {
		switch {
		case (m.Sense == Maximize && c.Op == LessEqual) || (m.Sense == Minimize && c.Op == GreaterEqual):
			col := len(dualC)
			dualC = append(dualC, c.B)
			expansions[i] = dualVarExpansion{terms: []dualTerm{{col: col, sign: 1}}}
			colOf[i] = []int{col}

		case (m.Sense == Maximize && c.Op == GreaterEqual) || (m.Sense == Minimize && c.Op == LessEqual):
			col := len(dualC)
			dualC = append(dualC, -c.B)
			expansions[i] = dualVarExpansion{terms: []dualTerm{{col: col, sign: -1}}}
			colOf[i] = []int{col}

		default: // Equal: free variable, split into y+ - y-
			colPlus := len(dualC)
			dualC = append(dualC, c.B)
			colMinus := len(dualC)
			dualC = append(dualC, -c.B)
			expansions[i] = dualVarExpansion{terms: []dualTerm{
				{col: colPlus, sign: 1},
				{col: colMinus, sign: -1},
			}}
			colOf[i] = []int{colPlus, colMinus}
		}
	}

	dualConstraints := make([]Constraint, n)
	op := GreaterEqual
	if m.Sense == Minimize {
		op = LessEqual
	}
	for j := 0; j < n; j++ {
		row := make([]float64, len(dualC))
		for i, c := range normalized {
			terms := expansions[i].terms
			for _, term := range terms {
				row[term.col] += term.sign * c.A[j]
			}
		}
		dualConstraints[j] = Constraint{A: row, Op: op, B: m.C[j]}
	}

	dualSense := Minimize
	if m.Sense == Minimize {
		dualSense = Maximize
	}

	dual := &Model{
		Name:        m.Name + " (dual)",
		Sense:       dualSense,
		C:           dualC,
		Constraints: dualConstraints,
	}
	return dual, expansions
}

// ShadowPrices reconstructs, for each original primal constraint, the
// shadow price Σ sign × y'_k over its dual-variable expansion, given the
// solved dual's variable values.
func ShadowPrices(expansions []dualVarExpansion, dualX []float64) []float64 {
	prices := make([]float64, len(expansions))
	for i, exp := range expansions {
		var sum float64
		for _, term := range exp.terms {
			if term.col < len(dualX) {
				sum += term.sign * dualX[term.col]
			}
		}
		prices[i] = sum
	}
	return prices
}

// SolveDual builds and solves the dual of m via Two-Phase, then maps the
// result back to shadow prices over m's original constraints.
func SolveDual(m *Model, recordHistory bool) (*DualSolution, error) {
	dual, expansions := BuildDual(m)
	sol, err := solveTwoPhase(dual, recordHistory)
	if err != nil {
		return nil, err
	}

	result := &DualSolution{
		Status:         sol.Status,
		Iterations:     sol.Iterations,
		ObjectiveValue: sol.ObjectiveValue,
	}
	if sol.Status == StatusOptimal {
		result.ShadowPrices = ShadowPrices(expansions, sol.X)
	}
	return result, nil
}
