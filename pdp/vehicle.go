// Package pdp - the Vehicle: an immutable specs/costs/times bundle around
// a mutable search tree with a current pointer.
package pdp

import (
	"fmt"
	"math"
)

// Vehicle wraps a state tree root, a current pointer that advances as
// actions are selected, and the vehicle's specs and matrices. Created once
// per problem instance; Reset rewinds it between multi-start trials.
type Vehicle struct {
	specs VehicleSpecs
	costs VehicleCosts
	times VehicleTimes

	root     *State // the initial state; never reassigned
	current  *State
	routeLen int

	// feasBudget, when positive, caps the candidate probes of one
	// deliverability check. 0 means unbounded.
	feasBudget int
}

// NewVehicle builds a vehicle over initial, its never-reassigned root.
//
// Errors: ErrNilState.
func NewVehicle(initial *State, specs VehicleSpecs, costs VehicleCosts, times VehicleTimes) (*Vehicle, error) {
	if initial == nil {
		return nil, ErrNilState
	}
	if specs.Compatible == nil {
		specs.Compatible = NewCallSet()
	}

	return &Vehicle{specs: specs, costs: costs, times: times, root: initial, current: initial}, nil
}

// Specs returns the vehicle's immutable attributes.
func (v *Vehicle) Specs() VehicleSpecs { return v.specs }

// Costs returns the vehicle's cost matrices.
func (v *Vehicle) Costs() VehicleCosts { return v.costs }

// Times returns the vehicle's time matrices.
func (v *Vehicle) Times() VehicleTimes { return v.times }

// Root returns the initial state of the tree.
func (v *Vehicle) Root() *State { return v.root }

// Current returns the state the vehicle has advanced to.
func (v *Vehicle) Current() *State { return v.current }

// RouteLength returns the number of committed actions.
func (v *Vehicle) RouteLength() int { return v.routeLen }

// SetFeasibilityBudget caps the candidate probes of one deliverability
// check; 0 restores unbounded recursion. Exhaustion is treated as
// infeasible, so a budget only ever prunes, never admits a violation.
func (v *Vehicle) SetFeasibilityBudget(n int) {
	if n < 0 {
		n = 0
	}
	v.feasBudget = n
}

// Expand registers every feasible, not-yet-branched next action from the
// current state: each open commitment, plus each pickup whose call is
// compatible with this vehicle and still unanswered. Candidates are
// probed in deterministic order (commitments, then pickups, both by
// ascending call index).
func (v *Vehicle) Expand(unanswered *CallSet) {
	v.expandFrom(v.current, unanswered, 1)
}

// ExpandDepth expands like Expand but recurses depth levels down,
// excluding the call claimed on each path segment — the lookahead used by
// the beam policy. Already-registered branches are descended into, not
// re-performed.
func (v *Vehicle) ExpandDepth(unanswered *CallSet, depth int) {
	v.expandFrom(v.current, unanswered, depth)
}

func (v *Vehicle) expandFrom(s *State, unanswered *CallSet, depth int) {
	if depth <= 0 {
		return
	}

	candidates := make([]*Action, 0, len(s.commitments)+unanswered.Len())
	candidates = append(candidates, s.commitments...)
	for _, c := range unanswered.Calls() {
		if !v.specs.Compatible.Contains(c.idx) {
			continue
		}
		candidates = append(candidates, c.pickup)
	}

	var (
		child *State
		ok    bool
	)
	for _, a := range candidates {
		child, ok = s.Next(a)
		if !ok {
			child = v.performFrom(s, a)
			if child == nil {
				continue
			}
			_ = s.AddTransition(a, child) // a is linked by construction
		}
		if depth > 1 {
			rest := unanswered.Clone()
			rest.Remove(a.call.idx)
			v.expandFrom(child, rest, depth-1)
		}
	}
}

// Perform simulates executing action from the current state and returns
// the resulting state, or nil when the action is infeasible — a missed
// time window, an incompatible or unowed call, a capacity overflow, or a
// resulting commitment set with no deliverable ordering. Infeasibility is
// an expected outcome, never an error.
func (v *Vehicle) Perform(action *Action) *State {
	return v.performFrom(v.current, action)
}

func (v *Vehicle) performFrom(s *State, a *Action) *State {
	arrival := s.time + v.times.Travel[s.node][a.node]
	if arrival > a.latest {
		return nil
	}
	done := math.Max(arrival, a.earliest) + v.times.Service[a.call.idx][a.role]

	var (
		commitments []*Action
		load        float64
	)
	switch a.role {
	case Pickup:
		if !v.specs.Compatible.Contains(a.call.idx) {
			return nil
		}
		load = s.load + a.call.size
		if load > v.specs.Capacity {
			return nil
		}
		commitments = insertCommitment(s.commitments, a.call.delivery)
	case Delivery:
		if !s.hasCommitment(a) {
			return nil
		}
		load = s.load - a.call.size
		commitments = dropCommitment(s.commitments, a)
	default:
		return nil
	}

	child := newChildState(a.node, done, commitments, load)
	if !v.deliverableFrom(child) {
		return nil
	}

	return child
}

// Select marks action as the chosen branch of the current state, advances
// the current pointer, and counts the route leg.
//
// Errors: ErrUnknownAction, ErrUnlinkedAction.
func (v *Vehicle) Select(action *Action) error {
	next, err := v.current.Select(action)
	if err != nil {
		return err
	}
	v.current = next
	v.routeLen++

	return nil
}

// Remove prunes every branch of call from the whole tree (root included).
// Used when another vehicle claims the call first. Idempotent.
func (v *Vehicle) Remove(call *Call) {
	v.root.Remove(call)
}

// Reset discards the entire tree below the root and rewinds the current
// pointer; used between multi-start trials.
func (v *Vehicle) Reset() {
	v.root.DeleteChildren()
	v.current = v.root
	v.routeLen = 0
}

// ActionSequence returns the committed route from the root.
func (v *Vehicle) ActionSequence() []*Action {
	return v.root.ActionSequence()
}

// StepCost is the immediate marginal cost of performing a from state s:
// travel cost to a's node, plus a's service cost, minus half the call's
// void cost. A served call forgoes half its penalty per leg, so pickup
// and delivery together cancel the void cost exactly.
func (v *Vehicle) StepCost(s *State, a *Action) float64 {
	return v.costs.Travel[s.node][a.node] + v.costs.Service[a.call.idx][a.role] - a.call.voidCost/2
}

// ActionCost is StepCost from the current state; the cost-greedy policy's
// scan key.
func (v *Vehicle) ActionCost(a *Action) float64 {
	return v.StepCost(v.current, a)
}

// Cost walks the committed action sequence from the root, accumulating
// travel and service costs and rebating half the void cost per completed
// leg. A vehicle with no committed actions costs 0.
func (v *Vehicle) Cost() float64 {
	var (
		cost float64
		node = v.root.node
	)
	for _, a := range v.root.ActionSequence() {
		cost += v.costs.Travel[node][a.node] + v.costs.Service[a.call.idx][a.role] - a.call.voidCost/2
		node = a.node
	}

	return cost
}

// String implements fmt.Stringer.
func (v *Vehicle) String() string { return fmt.Sprintf("Vehicle-%d", v.specs.Index) }

// insertCommitment returns a fresh slice with d added, keeping ascending
// call index order. The input is never mutated (states share nothing).
func insertCommitment(commitments []*Action, d *Action) []*Action {
	out := make([]*Action, 0, len(commitments)+1)
	inserted := false
	for _, c := range commitments {
		if !inserted && d.call.idx < c.call.idx {
			out = append(out, d)
			inserted = true
		}
		out = append(out, c)
	}
	if !inserted {
		out = append(out, d)
	}

	return out
}

// dropCommitment returns a fresh slice without d.
func dropCommitment(commitments []*Action, d *Action) []*Action {
	out := make([]*Action, 0, len(commitments)-1)
	for _, c := range commitments {
		if c == d {
			continue
		}
		out = append(out, c)
	}

	return out
}
