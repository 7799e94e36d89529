package opticore

import (
	"github.com/arkadia-ops/opticore/internal/lp"
)

// SolveLP runs a linear program through the simplex family (simplex-basic,
// two-phase, Big-M, or dual), instrumented with a scoped run ID,
// structured logging, and metrics.
func (s *Session) SolveLP(req lp.Request) (*lp.Solution, error) {
	r := startRun(FamilyLP, string(req.Method))
	recordModelSize(FamilyLP, req.Model.NumVars(), len(req.Model.Constraints))

	sol, err := lp.Solve(req)
	if err != nil {
		r.finish(false, 0, err)
		return nil, err
	}
	r.finish(sol.Status == lp.StatusOptimal, sol.Iterations, nil)
	return sol, nil
}

// SolveLP runs req through DefaultSession.
func SolveLP(req lp.Request) (*lp.Solution, error) {
	return DefaultSession.SolveLP(req)
}
