package transport

import "github.com/arkadia-ops/opticore/pkg/numeric"

// Potentials holds the MODI dual potentials (u, v) for a solved
// transportation allocation: on every basic cell, cost[i][j] == u[i] +
// v[j]. A nil entry means the potential was never reached from the basic
// cell graph (the allocation's basic cells are disconnected).
type Potentials struct {
	U []*float64
	V []*float64
}

// ComputePotentials derives (u, v) from the basic cells of alloc (cells
// with allocation > epsilon): it seeds u=0 at the first row of each
// connected component of the basic-cell bipartite graph and propagates
// u[i] = cost[i][j] - v[j] / v[j] = cost[i][j] - u[i] outward via DFS.
func ComputePotentials(costs [][]Cost, alloc Allocation) Potentials {
	rows := len(alloc)
	cols := 0
	if rows > 0 {
		cols = len(alloc[0])
	}

	u := make([]*float64, rows)
	v := make([]*float64, cols)
	if rows == 0 || cols == 0 {
		return Potentials{U: u, V: v}
	}

	rowToCols := make([][]int, rows)
	colToRows := make([][]int, cols)
	anyBasic := false
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if alloc[i][j] > numeric.Epsilon {
				rowToCols[i] = append(rowToCols[i], j)
				colToRows[j] = append(colToRows[j], i)
				anyBasic = true
			}
		}
	}
	if !anyBasic {
		return Potentials{U: u, V: v}
	}

	type node struct {
		isRow bool
		idx   int
	}

	for seed := 0; seed < rows; seed++ {
		if len(rowToCols[seed]) == 0 || u[seed] != nil {
			continue
		}
		zero := 0.0
		u[seed] = &zero
		stack := []node{{isRow: true, idx: seed}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.isRow {
				i := top.idx
				for _, j := range rowToCols[i] {
					if v[j] == nil && u[i] != nil {
						val := costs[i][j].Resolved() - *u[i]
						v[j] = &val
						stack = append(stack, node{isRow: false, idx: j})
					}
				}
			} else {
				j := top.idx
				for _, i := range colToRows[j] {
					if u[i] == nil && v[j] != nil {
						val := costs[i][j].Resolved() - *v[j]
						u[i] = &val
						stack = append(stack, node{isRow: true, idx: i})
					}
				}
			}
		}
	}

	return Potentials{U: u, V: v}
}

// ReducedCosts computes cost[i][j] - u[i] - v[j] for every cell. A cell
// whose row or column potential is unreached (nil) gets a nil entry too.
func ReducedCosts(costs [][]Cost, p Potentials) [][]*float64 {
	rows := len(costs)
	cols := 0
	if rows > 0 {
		cols = len(costs[0])
	}
	rc := make([][]*float64, rows)
	for i := 0; i < rows; i++ {
		rc[i] = make([]*float64, cols)
		for j := 0; j < cols; j++ {
			if p.U[i] == nil || p.V[j] == nil {
				continue
			}
			val := costs[i][j].Resolved() - *p.U[i] - *p.V[j]
			rc[i][j] = &val
		}
	}
	return rc
}

// Cell identifies a row/column position in the allocation matrix.
type Cell struct {
	Row int
	Col int
}

// CellThreshold is how far cost[cell.Row][cell.Col] would need to drop
// before that empty cell could profitably enter the basis: its reduced
// cost, for every non-basic cell whose reduced cost is strictly positive.
type CellThreshold struct {
	Cell      Cell
	Threshold float64
}

// Sensitivity is the MODI report for a solved allocation: the dual
// potentials, reduced costs over every cell (basic cells included), whether the
// allocation is already optimal by the reduced-cost test, the per-cell
// entry threshold for every empty cell with a positive reduced cost, and
// which empty cells are alternate-optimal (reduced cost within epsilon of
// zero).
type Sensitivity struct {
	Potentials        Potentials
	ReducedCosts      [][]*float64
	IsOptimal         bool
	MostNegative      *Cell
	MostNegativeValue float64
	Thresholds        []CellThreshold
	AlternateOptima   []Cell
}

// ComputeSensitivity runs the full MODI analysis described in §4.6: it is
// a read-only diagnostic over an already-solved (or any) allocation, used
// to confirm optimality independently of the stepping-stone loop, to
// report for each empty cell the magnitude its cost would need to
// decrease by for entry, and to flag alternate optimal solutions (empty
// cells whose reduced cost is within epsilon of zero).
func ComputeSensitivity(costs [][]Cost, alloc Allocation) Sensitivity {
	p := ComputePotentials(costs, alloc)
	rc := ReducedCosts(costs, p)

	rows := len(alloc)
	cols := 0
	if rows > 0 {
		cols = len(alloc[0])
	}

	var thresholds []CellThreshold
	var alternate []Cell
	var mostNegative *Cell
	bestVal := 0.0

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if alloc[i][j] > numeric.Epsilon {
				continue
			}
			val := rc[i][j]
			if val == nil {
				continue
			}
			switch {
			case *val < -1e-7:
				if mostNegative == nil || *val < bestVal {
					pos := Cell{Row: i, Col: j}
					mostNegative = &pos
					bestVal = *val
				}
			case abs(*val) <= 1e-7:
				alternate = append(alternate, Cell{Row: i, Col: j})
			default:
				thresholds = append(thresholds, CellThreshold{Cell: Cell{Row: i, Col: j}, Threshold: *val})
			}
		}
	}

	return Sensitivity{
		Potentials:        p,
		ReducedCosts:      rc,
		IsOptimal:         mostNegative == nil,
		MostNegative:      mostNegative,
		MostNegativeValue: bestVal,
		Thresholds:        thresholds,
		AlternateOptima:   alternate,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
