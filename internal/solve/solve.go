// Package solve defines the optimizer boundary. The graph is handed to a
// Solver; everything upstream only prepares data and never optimizes.
package solve

import (
	"context"

	"github.com/vk/enflow/internal/model"
)

// Solution is what a solver reports back: an objective value and the decided
// capacity per capacity-bearing component.
type Solution struct {
	Solver     string
	Objective  float64
	Capacities map[string]float64
}

// Solver consumes a finished graph and produces a solution.
type Solver interface {
	Solve(ctx context.Context, g *model.Graph) (*Solution, error)
}

// NullSolver is the no-optimization placeholder: existing capacities pass
// through unchanged and investment decisions settle at their lower bound.
// It exists so the pipeline runs end to end without an LP backend attached.
type NullSolver struct{}

// NewNullSolver creates a pass-through solver.
func NewNullSolver() *NullSolver {
	return &NullSolver{}
}

// Solve assigns each component its minimum viable capacity and prices the
// investment part at the annualized unit cost.
func (s *NullSolver) Solve(ctx context.Context, g *model.Graph) (*Solution, error) {
	sol := &Solution{
		Solver:     "null",
		Capacities: make(map[string]float64),
	}
	for _, comp := range g.Components() {
		holder, ok := comp.(model.CapacityHolder)
		if !ok {
			continue
		}
		desc := holder.PrimaryCapacity()
		if desc == nil {
			continue
		}
		switch desc.Kind {
		case model.CapacityExisting:
			sol.Capacities[comp.Label()] = desc.Value
		case model.CapacityInvestment:
			invested := desc.Minimum
			sol.Capacities[comp.Label()] = invested
			if desc.HasExisting {
				sol.Capacities[comp.Label()] += desc.Existing
			}
			sol.Objective += invested * desc.EPCosts
		}
	}
	return sol, nil
}
