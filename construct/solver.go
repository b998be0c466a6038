// Package construct - the multi-start Solver facade.
package construct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pdroute/instance"
	"github.com/katalvlaran/pdroute/pdp"
)

// Solver owns a problem's vehicles and calls and runs construction trials
// over them. Trials share the model objects (Call/Action/specs are
// immutable) and reset all mutable tree state in between, so they must
// run sequentially.
type Solver struct {
	vehicles []*pdp.Vehicle
	calls    []*pdp.Call
	opts     Options
}

// NewSolver loads the problem instance at path and wraps it.
//
// Errors: instance load/parse errors, option validation sentinels.
func NewSolver(path string, opts Options) (*Solver, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	problem, err := instance.Load(path)
	if err != nil {
		return nil, fmt.Errorf("construct: %w", err)
	}

	return &Solver{vehicles: problem.Vehicles, calls: problem.Calls, opts: opts}, nil
}

// NewSolverFromProblem wraps an already-built problem. vehicles should be
// sorted by index (the loader's order) for deterministic tie-breaking.
//
// Errors: option validation sentinels.
func NewSolverFromProblem(vehicles []*pdp.Vehicle, calls []*pdp.Call, opts Options) (*Solver, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Solver{vehicles: vehicles, calls: calls, opts: opts}, nil
}

// Vehicles returns the solver's vehicles in loader order.
func (s *Solver) Vehicles() []*pdp.Vehicle { return s.vehicles }

// Calls returns the solver's calls in loader order.
func (s *Solver) Calls() []*pdp.Call { return s.calls }

// Reset rewinds every vehicle tree to its root.
func (s *Solver) Reset() {
	for _, v := range s.vehicles {
		v.Reset()
	}
}

// Solve resets the trees and runs a single construction.
func (s *Solver) Solve() (Result, error) {
	s.Reset()

	return construct(s.vehicles, s.calls, newPicker(s.opts))
}

// MultiSolve runs n sequential trials, resetting between them, and
// returns the lowest-cost assignment seen. Deterministic policies produce
// identical trials — n > 1 only pays off with randomness in the loop.
//
// Errors: ErrNoTrials, plus anything a single run can return.
func (s *Solver) MultiSolve(n int) (Solution, error) {
	if n < 1 {
		return Solution{}, ErrNoTrials
	}

	s.Reset()
	pk := newPicker(s.opts) // one rng stream across all trials

	var (
		best     Result
		bestCost = math.Inf(1)
	)
	for trial := 0; trial < n; trial++ {
		res, err := construct(s.vehicles, s.calls, pk)
		if err != nil {
			return Solution{}, err
		}
		if res.Cost < bestCost {
			bestCost = res.Cost
			best = res
		}
		s.Reset()
	}

	return toSolution(best)
}

// toSolution flattens a Result into stop records. Actions are immutable
// and owned by their calls, so the records stay valid after resets.
func toSolution(res Result) (Solution, error) {
	sol := Solution{
		Routes: make([]Route, len(res.Sequences)),
		Cost:   res.Cost,
	}
	for i, seq := range res.Sequences {
		route := Route{Vehicle: i, Stops: make([]Stop, 0, len(seq))}
		for _, a := range seq {
			idx, err := a.CallIndex()
			if err != nil {
				return Solution{}, err
			}
			route.Stops = append(route.Stops, Stop{
				Role:     a.Role(),
				Call:     idx,
				Node:     a.Node(),
				Earliest: a.EarliestTime(),
				Latest:   a.LatestTime(),
			})
		}
		sol.Routes[i] = route
	}
	for _, c := range res.Unserved {
		sol.Unserved = append(sol.Unserved, c.Index())
	}

	return sol, nil
}
