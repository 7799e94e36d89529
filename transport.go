package opticore

import (
	"github.com/arkadia-ops/opticore/internal/transport"
)

// SolveTransport runs a transportation request through the requested
// initial-solution heuristic, optimizing via stepping-stone when the
// method calls for it. An unset Options.MaxIterations is filled from the
// session's configured cap.
func (s *Session) SolveTransport(req transport.Request) (*transport.Result, error) {
	if req.Options.MaxIterations <= 0 {
		req.Options.MaxIterations = s.cfg.Transport.MaxIterations
	}

	r := startRun(FamilyTransport, string(req.Method))
	recordModelSize(FamilyTransport, len(req.Model.Supply), len(req.Model.Demand))

	res, err := transport.Solve(req)
	if err != nil {
		r.finish(false, 0, err)
		return nil, err
	}
	r.finish(true, res.Iterations, nil)
	return res, nil
}

// SolveTransportCompare runs all three initial-solution heuristics and
// optimizes from whichever is cheapest. See transport.SolveCompare.
func (s *Session) SolveTransportCompare(req transport.Request) (*transport.CompareResult, error) {
	if req.Options.MaxIterations <= 0 {
		req.Options.MaxIterations = s.cfg.Transport.MaxIterations
	}

	r := startRun(FamilyTransport, "compare")
	recordModelSize(FamilyTransport, len(req.Model.Supply), len(req.Model.Demand))

	res, err := transport.SolveCompare(req)
	if err != nil {
		r.finish(false, 0, err)
		return nil, err
	}
	r.finish(true, res.Optimal.Iterations, nil)
	return res, nil
}

// SolveTransport runs req through DefaultSession.
func SolveTransport(req transport.Request) (*transport.Result, error) {
	return DefaultSession.SolveTransport(req)
}

// SolveTransportCompare runs req through DefaultSession.
func SolveTransportCompare(req transport.Request) (*transport.CompareResult, error) {
	return DefaultSession.SolveTransportCompare(req)
}
