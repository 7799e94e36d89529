package lp

import (
	"fmt"

	"github.com/arkadia-ops/opticore/pkg/apperror"
)

// Method is the caller-selected LP solve method.
type Method string

const (
	MethodAuto     Method = "auto"
	MethodSimplex  Method = "simplex"
	MethodTwoPhase Method = "two_phase"
	MethodBigM     Method = "big_m"
	MethodDual     Method = "dual"
)

// Request is an LP solve request: a model plus the method to use.
type Request struct {
	Model         Model
	Method        Method
	RecordHistory bool
}

// Solve dispatches an LP request to the appropriate builder/driver.
//
// "auto" selects simplex-basic only when every constraint is <= with a
// non-negative RHS; otherwise it always falls through to Two-Phase, never
// Big-M — Big-M is reachable only by an explicit method="big_m" request.
// This precedence follows the original source's dispatcher exactly rather
// than an inferred rule (see SUPPLEMENTED FEATURES in SPEC_FULL.md).
// "simplex" falls back to Two-Phase (with an explanatory message) when the
// model isn't simplex-basic eligible.
func Solve(req Request) (*Solution, error) {
	m := &req.Model
	if err := m.Validate(); err != nil {
		return nil, err
	}

	switch req.Method {
	case MethodAuto:
		if isSimplexBasicEligible(m) {
			return solveSimplexBasic(m, req.RecordHistory)
		}
		return solveTwoPhase(m, req.RecordHistory)

	case MethodSimplex:
		if isSimplexBasicEligible(m) {
			return solveSimplexBasic(m, req.RecordHistory)
		}
		sol, err := solveTwoPhase(m, req.RecordHistory)
		if err != nil {
			return nil, err
		}
		sol.Message = "model is not simplex-basic eligible; solved via two_phase instead. " + sol.Message
		return sol, nil

	case MethodTwoPhase:
		return solveTwoPhase(m, req.RecordHistory)

	case MethodBigM:
		return solveBigM(m, req.RecordHistory)

	case MethodDual:
		dualSol, err := SolveDual(m, req.RecordHistory)
		if err != nil {
			return nil, err
		}
		primalSol, err := solveTwoPhase(m, req.RecordHistory)
		if err != nil {
			return nil, err
		}
		primalSol.MethodUsed = "dual"
		primalSol.Dual = dualSol
		return primalSol, nil

	default:
		return nil, apperror.NewWithField(apperror.CodeInvalidMethod,
			fmt.Sprintf("unknown LP method %q", req.Method), "method")
	}
}
