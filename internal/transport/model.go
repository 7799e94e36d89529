// Package transport implements the transportation-problem solver family:
// balancing a supply/demand model, building an initial basic feasible
// solution via Northwest Corner, Least-Cost, or Vogel's Approximation, and
// optimizing that solution via stepping-stone/MODI.
package transport

import (
	"fmt"

	"github.com/arkadia-ops/opticore/pkg/apperror"
	"github.com/arkadia-ops/opticore/pkg/numeric"
)

// BigM is the cost assigned to a route that does not exist in the original
// model (a forbidden origin-destination pair). It is large enough that the
// optimizer never routes flow across it unless forced to by infeasibility
// elsewhere, but finite so ordinary arithmetic stays well-behaved.
const BigM = 1e9

// Cost is a single origin-destination cost cell. IsForbidden marks a route
// that the caller represented as "M" (infinite cost) rather than a number;
// Value is meaningless when IsForbidden is true.
type Cost struct {
	Value       float64
	IsForbidden bool
}

// Resolved returns the cost to use in arithmetic: BigM for a forbidden
// route, Value otherwise.
func (c Cost) Resolved() float64 {
	if c.IsForbidden {
		return BigM
	}
	return c.Value
}

// Model is a transportation problem: supply at each origin, demand at each
// destination, and the per-cell shipping cost.
type Model struct {
	Supply []float64
	Demand []float64
	Costs  [][]Cost
}

// Validate checks that Costs is a rectangular Supply x Demand matrix and
// that no supply or demand entry is negative. It does not require the
// problem to be balanced: balancing is a separate, explicit step.
func (m *Model) Validate() error {
	if m == nil {
		return apperror.ErrNilInput
	}
	if len(m.Supply) == 0 || len(m.Demand) == 0 {
		return apperror.ErrEmptyModel
	}
	if len(m.Costs) != len(m.Supply) {
		return apperror.NewWithField(apperror.CodeDimensionMismatch,
			fmt.Sprintf("costs has %d rows, want %d (one per supply)", len(m.Costs), len(m.Supply)),
			"costs")
	}
	for i, row := range m.Costs {
		if len(row) != len(m.Demand) {
			return apperror.NewWithField(apperror.CodeDimensionMismatch,
				fmt.Sprintf("costs row %d has %d cells, want %d (one per demand)", i, len(row), len(m.Demand)),
				"costs")
		}
	}
	for i, s := range m.Supply {
		if s < 0 {
			return apperror.NewWithField(apperror.CodeNegativeSupply,
				fmt.Sprintf("supply[%d] = %v is negative", i, s), "supply")
		}
	}
	for j, d := range m.Demand {
		if d < 0 {
			return apperror.NewWithField(apperror.CodeNegativeDemand,
				fmt.Sprintf("demand[%d] = %v is negative", j, d), "demand")
		}
	}
	return nil
}

// Allocation is a dense rows x cols shipment matrix, one cell per
// origin-destination pair (including any dummy row/column added by
// balancing).
type Allocation [][]float64

// Clone returns a deep copy of the allocation.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for i, row := range a {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// TotalCost sums cost*allocation over every cell, and reports whether any
// cell carrying positive flow is a forbidden (BigM) route.
func TotalCost(alloc Allocation, costs [][]Cost) (float64, bool) {
	var total float64
	var hasM bool
	for i, row := range alloc {
		for j, x := range row {
			if x <= numeric.Epsilon {
				continue
			}
			c := costs[i][j]
			total += x * c.Resolved()
			if c.IsForbidden {
				hasM = true
			}
		}
	}
	return total, hasM
}
