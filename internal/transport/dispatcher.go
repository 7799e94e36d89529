package transport

import (
	"fmt"

	"github.com/arkadia-ops/opticore/pkg/apperror"
)

// Method selects which transportation heuristic (and whether to
// optimize) a Request runs.
type Method string

const (
	MethodAuto      Method = "auto"
	MethodNorthwest Method = "northwest"
	MethodMinCost   Method = "min_cost"
	MethodVogel     Method = "vogel"
	MethodOptimize  Method = "optimize"
	MethodCompare   Method = "compare"
)

// Options configures optional behavior of a transportation solve:
// whether to run all three initial heuristics side by side, whether to
// optimize past the chosen initial solution, the stepping-stone
// iteration cap and trace recording, and whether to run the MODI
// sensitivity analysis over the final allocation.
type Options struct {
	CompareAll    bool
	Optimize      bool
	MaxIterations int
	Trace         bool
	TraceLimit    int
	Sensitivity   bool
}

// Request is a transportation solve request.
type Request struct {
	Model   Model
	Method  Method
	Options Options
}

// Result is the outcome of a single initial-solution method (optionally
// followed by stepping-stone optimization).
type Result struct {
	MethodUsed  string
	Status      string
	Allocation  Allocation
	TotalCost   float64
	HasM        bool
	Iterations  int
	StartedFrom string
	Trace       []TraceStep
	Balanced    BalancedInfo
	Sensitivity *Sensitivity
}

// BalancedInfo reports whether and how Balance altered the model.
type BalancedInfo struct {
	AddedDummyOrigin bool
	AddedDummyDest   bool
	Rows             int
	Cols             int
}

// CompareResult is the outcome of MethodCompare: all three initial
// solutions, plus the optimized result obtained by optimizing from
// whichever of the three had the lowest total cost.
type CompareResult struct {
	Initials map[string]Result
	Optimal  Result
	Balanced BalancedInfo
}

// Solve dispatches a transportation request. "auto" and "optimize" both
// start from Vogel's Approximation (matching the original dispatcher's
// default, which treats any unrecognized initial-method name as Vogel)
// and always run stepping-stone afterward; "northwest"/"min_cost"/"vogel"
// (and an empty method, which means Vogel) run stepping-stone only when
// Options.Optimize is set; "compare" (or Options.CompareAll) is handled by
// SolveCompare instead and is rejected here.
func Solve(req Request) (*Result, error) {
	m := &req.Model
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if req.Method == MethodCompare || req.Options.CompareAll {
		return nil, apperror.New(apperror.CodeInvalidMethod,
			"method \"compare\" must be solved via SolveCompare")
	}

	bal := Balance(m)
	info := BalancedInfo{
		AddedDummyOrigin: bal.AddedDummyOrigin,
		AddedDummyDest:   bal.AddedDummyDest,
		Rows:             len(bal.Supply),
		Cols:             len(bal.Demand),
	}

	var alloc Allocation
	var used string

	switch req.Method {
	case MethodNorthwest:
		alloc = NorthwestCorner(bal.Supply, bal.Demand)
		used = "northwest"
	case MethodMinCost:
		alloc = LeastCost(bal.Supply, bal.Demand, bal.Costs)
		used = "min_cost"
	case MethodVogel, MethodAuto, MethodOptimize, "":
		alloc = VogelApproximation(bal.Supply, bal.Demand, bal.Costs)
		used = "vogel"
	default:
		return nil, apperror.NewWithField(apperror.CodeInvalidMethod,
			fmt.Sprintf("unknown transportation method %q", req.Method), "method")
	}

	doOptimize := req.Method == MethodAuto || req.Method == MethodOptimize || req.Options.Optimize
	iterations := 0
	var trace []TraceStep

	if doOptimize {
		optimized, iters, steps, err := OptimizeSteppingStone(alloc, bal.Costs, req.Options.MaxIterations, req.Options.Trace, traceLimitOrDefault(req.Options.TraceLimit))
		if err != nil {
			return nil, err
		}
		alloc = optimized
		iterations = iters
		trace = steps
		used = used + "+optimize"
	}

	total, hasM := TotalCost(alloc, bal.Costs)
	status := "FEASIBLE"
	if doOptimize {
		status = "OPTIMAL"
	}

	var sens *Sensitivity
	if req.Options.Sensitivity {
		s := ComputeSensitivity(bal.Costs, alloc)
		sens = &s
	}

	return &Result{
		MethodUsed:  used,
		Status:      status,
		Allocation:  alloc,
		TotalCost:   total,
		HasM:        hasM,
		Iterations:  iterations,
		Trace:       trace,
		Balanced:    info,
		Sensitivity: sens,
	}, nil
}

// SolveCompare runs all three initial-solution heuristics, picks the one
// with the lowest total cost as the optimization starting point, and runs
// stepping-stone from there — the "compare" mode supplemented from the
// original dispatcher (see SPEC_FULL.md's SUPPLEMENTED FEATURES).
func SolveCompare(req Request) (*CompareResult, error) {
	m := &req.Model
	if err := m.Validate(); err != nil {
		return nil, err
	}

	bal := Balance(m)
	info := BalancedInfo{
		AddedDummyOrigin: bal.AddedDummyOrigin,
		AddedDummyDest:   bal.AddedDummyDest,
		Rows:             len(bal.Supply),
		Cols:             len(bal.Demand),
	}

	allocNW := NorthwestCorner(bal.Supply, bal.Demand)
	allocMC := LeastCost(bal.Supply, bal.Demand, bal.Costs)
	allocVAM := VogelApproximation(bal.Supply, bal.Demand, bal.Costs)

	pack := func(name string, alloc Allocation) Result {
		z, hasM := TotalCost(alloc, bal.Costs)
		return Result{MethodUsed: name, Status: "FEASIBLE", Allocation: alloc, TotalCost: z, HasM: hasM, Balanced: info}
	}

	initials := map[string]Result{
		"northwest": pack("northwest", allocNW),
		"min_cost":  pack("min_cost", allocMC),
		"vogel":     pack("vogel", allocVAM),
	}

	startedFrom := "northwest"
	best := initials["northwest"].TotalCost
	for _, name := range []string{"min_cost", "vogel"} {
		if initials[name].TotalCost < best {
			best = initials[name].TotalCost
			startedFrom = name
		}
	}

	optimized, iterations, trace, err := OptimizeSteppingStone(
		initials[startedFrom].Allocation, bal.Costs, req.Options.MaxIterations, req.Options.Trace, traceLimitOrDefault(req.Options.TraceLimit))
	if err != nil {
		return nil, err
	}

	total, hasM := TotalCost(optimized, bal.Costs)

	var sens *Sensitivity
	if req.Options.Sensitivity {
		s := ComputeSensitivity(bal.Costs, optimized)
		sens = &s
	}

	optimal := Result{
		MethodUsed:  "optimal",
		Status:      "OPTIMAL",
		Allocation:  optimized,
		TotalCost:   total,
		HasM:        hasM,
		Iterations:  iterations,
		StartedFrom: startedFrom,
		Trace:       trace,
		Balanced:    info,
		Sensitivity: sens,
	}

	return &CompareResult{Initials: initials, Optimal: optimal, Balanced: info}, nil
}

func traceLimitOrDefault(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}
