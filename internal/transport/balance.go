package transport

import "math"

// Balanced is a transportation model whose total supply equals total
// demand, obtained from a Model by appending a zero-cost dummy origin or
// destination if the two totals disagreed.
type Balanced struct {
	Supply             []float64
	Demand             []float64
	Costs              [][]Cost
	AddedDummyOrigin   bool
	AddedDummyDest     bool
}

// Balance equalizes total supply and total demand: if supply exceeds
// demand, it appends a zero-cost dummy destination absorbing the excess;
// if demand exceeds supply, a zero-cost dummy origin. A difference within
// Epsilon of zero (after rounding to 8 decimals, matching the tolerance
// the original model used) is treated as already balanced.
func Balance(m *Model) *Balanced {
	rows := len(m.Supply)
	cols := len(m.Demand)

	supply := append([]float64(nil), m.Supply...)
	demand := append([]float64(nil), m.Demand...)
	costs := make([][]Cost, rows)
	for i, row := range m.Costs {
		costs[i] = append([]Cost(nil), row...)
	}

	totalSupply := round8(sum(supply))
	totalDemand := round8(sum(demand))

	b := &Balanced{}
	switch {
	case totalSupply > totalDemand:
		demand = append(demand, totalSupply-totalDemand)
		for i := range costs {
			costs[i] = append(costs[i], Cost{Value: 0})
		}
		b.AddedDummyDest = true

	case totalDemand > totalSupply:
		supply = append(supply, totalDemand-totalSupply)
		dummyRow := make([]Cost, cols)
		costs = append(costs, dummyRow)
		b.AddedDummyOrigin = true
	}

	b.Supply = supply
	b.Demand = demand
	b.Costs = costs
	return b
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}

// round8 rounds to 8 decimal places, the tolerance the balance check uses
// to decide whether supply and demand already agree.
func round8(v float64) float64 {
	const scale = 1e8
	return math.Round(v*scale) / scale
}
