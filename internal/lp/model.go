// Package lp implements the linear programming solver core: a revised
// tableau simplex kernel shared by three solve variants (simplex-basic,
// two-phase, Big-M) plus a primal-to-dual transformation.
package lp

import (
	"fmt"

	"github.com/arkadia-ops/opticore/pkg/apperror"
)

// Sense is the optimisation direction of an LP model.
type Sense string

const (
	Maximize Sense = "max"
	Minimize Sense = "min"
)

// Op is a constraint's relational operator.
type Op string

const (
	LessEqual    Op = "<="
	GreaterEqual Op = ">="
	Equal        Op = "="
)

// Constraint is one row of an LP model: a·x Op B.
type Constraint struct {
	A  []float64
	Op Op
	B  float64
}

// Model is a linear program over continuous, implicitly non-negative
// variables: optimise Sense(C·x) subject to Constraints.
type Model struct {
	Name        string
	Sense       Sense
	C           []float64
	Constraints []Constraint
}

// NumVars returns the number of decision variables.
func (m *Model) NumVars() int {
	return len(m.C)
}

// Validate checks the structural invariants of a Model: non-empty objective,
// every constraint row matching the objective's width, and a recognised
// sense/operator set. It does not evaluate feasibility or boundedness.
func (m *Model) Validate() error {
	if m == nil {
		return apperror.ErrNilInput
	}
	if len(m.C) == 0 {
		return apperror.ErrEmptyModel
	}
	if m.Sense != Maximize && m.Sense != Minimize {
		return apperror.NewWithField(apperror.CodeInvalidModel,
			fmt.Sprintf("unknown sense %q", m.Sense), "sense")
	}
	n := len(m.C)
	for i, c := range m.Constraints {
		if len(c.A) != n {
			return apperror.NewWithField(apperror.CodeDimensionMismatch,
				fmt.Sprintf("constraint %d has %d coefficients, want %d", i, len(c.A), n),
				"constraints")
		}
		if c.Op != LessEqual && c.Op != GreaterEqual && c.Op != Equal {
			return apperror.NewWithField(apperror.CodeInvalidModel,
				fmt.Sprintf("constraint %d has unknown operator %q", i, c.Op), "constraints")
		}
	}
	return nil
}

// Status is the terminal state of a solve attempt.
type Status string

const (
	StatusOptimal     Status = "OPTIMAL"
	StatusInfeasible  Status = "INFEASIBLE"
	StatusUnbounded   Status = "UNBOUNDED"
)

// Extra carries the pedagogical/diagnostic payload of a solve: the final
// tableau, basis, and optional iteration history. Populated on every
// OPTIMAL solve by the simplex, two-phase and big-M methods; History is
// filled only when the caller requests it (RecordHistory).
type Extra struct {
	Tableau     Tableau
	Basis       []int
	VarNames    []string
	Row0        []float64
	BasicVars   []string
	NonbasicVars []string
	History     []IterationSnapshot
}

// Solution is the result of an LP solve attempt.
type Solution struct {
	Status         Status
	X              []float64
	ObjectiveValue float64
	Iterations     int
	Message        string
	MethodUsed     string
	Slacks         []float64
	Dual           *DualSolution
	Extra          *Extra
}

// IterationSnapshot records one pivot step for optional trace output.
type IterationSnapshot struct {
	Tableau       Tableau
	Basis         []int
	Entering      int
	Leaving       int
	LeavingVar    int
	PivotValue    float64
	Description   string
}
