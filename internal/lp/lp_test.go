package lp

import (
	"testing"

	"github.com/arkadia-ops/opticore/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_SimplexBasic_ClassicScenario(t *testing.T) {
	m := Model{
		Sense: Maximize,
		C:     []float64{3, 5},
		Constraints: []Constraint{
			{A: []float64{1, 0}, Op: LessEqual, B: 4},
			{A: []float64{0, 2}, Op: LessEqual, B: 12},
			{A: []float64{3, 2}, Op: LessEqual, B: 18},
		},
	}

	sol, err := Solve(Request{Model: m, Method: MethodAuto})
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.Equal(t, "simplex", sol.MethodUsed)
	assert.InDelta(t, 36, sol.ObjectiveValue, 1e-6)
}

func TestSolve_Auto_FallsThroughToTwoPhase(t *testing.T) {
	m := Model{
		Sense: Maximize,
		C:     []float64{2, 1},
		Constraints: []Constraint{
			{A: []float64{1, 1}, Op: GreaterEqual, B: 4},
			{A: []float64{1, 0}, Op: LessEqual, B: 6},
		},
	}

	sol, err := Solve(Request{Model: m, Method: MethodAuto})
	require.NoError(t, err)
	assert.Equal(t, "two_phase", sol.MethodUsed)
	assert.Contains(t, []Status{StatusOptimal, StatusUnbounded}, sol.Status)
}

func TestSolve_BigM_MatchesTwoPhase(t *testing.T) {
	m := Model{
		Sense: Minimize,
		C:     []float64{4, 1},
		Constraints: []Constraint{
			{A: []float64{3, 1}, Op: Equal, B: 3},
			{A: []float64{4, 3}, Op: GreaterEqual, B: 6},
			{A: []float64{1, 2}, Op: LessEqual, B: 4},
		},
	}

	twoPhase, err := Solve(Request{Model: m, Method: MethodTwoPhase})
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, twoPhase.Status)

	bigM, err := Solve(Request{Model: m, Method: MethodBigM})
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, bigM.Status)

	assert.InDelta(t, twoPhase.ObjectiveValue, bigM.ObjectiveValue, 1e-4)
}

func TestSolve_Infeasible(t *testing.T) {
	m := Model{
		Sense: Maximize,
		C:     []float64{1, 1},
		Constraints: []Constraint{
			{A: []float64{1, 1}, Op: LessEqual, B: 2},
			{A: []float64{1, 1}, Op: GreaterEqual, B: 10},
		},
	}

	sol, err := Solve(Request{Model: m, Method: MethodTwoPhase})
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, sol.Status)
}

func TestSolve_Unbounded(t *testing.T) {
	m := Model{
		Sense: Maximize,
		C:     []float64{1, 1},
		Constraints: []Constraint{
			{A: []float64{-1, 1}, Op: LessEqual, B: 1},
		},
	}

	sol, err := Solve(Request{Model: m, Method: MethodTwoPhase})
	require.NoError(t, err)
	assert.Equal(t, StatusUnbounded, sol.Status)
}

func TestSolve_UnknownMethod(t *testing.T) {
	m := Model{Sense: Maximize, C: []float64{1}, Constraints: []Constraint{{A: []float64{1}, Op: LessEqual, B: 1}}}
	_, err := Solve(Request{Model: m, Method: Method("bogus")})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidMethod, apperror.Code(err))
}

func TestSolve_Dual_ObjectivesMatch(t *testing.T) {
	m := Model{
		Sense: Maximize,
		C:     []float64{3, 5},
		Constraints: []Constraint{
			{A: []float64{1, 0}, Op: LessEqual, B: 4},
			{A: []float64{0, 2}, Op: LessEqual, B: 12},
			{A: []float64{3, 2}, Op: LessEqual, B: 18},
		},
	}

	sol, err := Solve(Request{Model: m, Method: MethodDual})
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	require.NotNil(t, sol.Dual)
	assert.InDelta(t, sol.ObjectiveValue, sol.Dual.ObjectiveValue, 1e-4)
}

func TestModel_Validate_DimensionMismatch(t *testing.T) {
	m := Model{
		Sense: Maximize,
		C:     []float64{1, 1},
		Constraints: []Constraint{
			{A: []float64{1}, Op: LessEqual, B: 1},
		},
	}
	err := m.Validate()
	require.Error(t, err)
}

func TestModel_Validate_EmptyModel(t *testing.T) {
	m := Model{Sense: Maximize}
	err := m.Validate()
	require.Error(t, err)
}
