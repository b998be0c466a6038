// Package construct - the incremental construction loop and the solution
// cost.
package construct

import (
	"sort"
	"time"

	"github.com/katalvlaran/pdroute/pdp"
)

// Construct runs one construction from fresh (or reset) vehicle trees:
// expand every vehicle against the full call set, then repeatedly let the
// policy pick a (vehicle, action) pair, commit it, claim its call, and
// re-expand — until no vehicle has a feasible next action (the sole
// terminal condition, modulo the optional step/time budgets).
//
// Contracts:
//   - vehicles are scanned in slice order for tie-breaking; pass them
//     sorted by index (instance.Load does) for index-ordered ties.
//   - Vehicle trees must be at their roots (fresh or Reset).
//
// Errors: option validation sentinels; tree protocol errors only on
// internal misuse.
func Construct(vehicles []*pdp.Vehicle, calls []*pdp.Call, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	return construct(vehicles, calls, newPicker(opts))
}

// construct is the shared loop body; the picker persists across
// multi-start trials so randomized policies keep drawing from one stream.
func construct(vehicles []*pdp.Vehicle, calls []*pdp.Call, pk *picker) (Result, error) {
	unanswered := pdp.NewCallSet(calls...)
	for _, v := range vehicles {
		v.SetFeasibilityBudget(pk.opts.FeasibilityBudget)
		v.Expand(unanswered)
	}

	var (
		start = time.Now()
		steps = 0
	)
	for {
		if pk.opts.MaxSteps > 0 && steps >= pk.opts.MaxSteps {
			break
		}
		if pk.opts.TimeLimit > 0 && time.Since(start) >= pk.opts.TimeLimit {
			break
		}

		active := activeVehicles(vehicles)
		if len(active) == 0 {
			break
		}

		v, a := pk.pick(active, unanswered)
		if err := v.Select(a); err != nil {
			return Result{}, err
		}

		call, err := a.Call()
		if err != nil {
			return Result{}, err
		}
		unanswered.Remove(call.Index())

		// A claimed pickup must vanish from every other tree. Deliveries
		// need no cross-vehicle pruning: only the committed vehicle ever
		// branched on them.
		if a.Role() == pdp.Pickup {
			for _, other := range vehicles {
				if other == v {
					continue
				}
				other.Remove(call)
			}
		}

		v.Expand(unanswered)
		steps++
	}

	return Result{
		Sequences: actionSequences(vehicles),
		Cost:      TotalCost(vehicles, calls),
		Unserved:  unanswered.Calls(),
	}, nil
}

// TotalCost is the objective: every call charged its full void cost as if
// unserved, plus each vehicle's route cost. The route cost rebates half
// the void cost per committed leg, so a fully served call nets zero
// penalty and an unserved one pays in full. This accounting is preserved
// exactly for compatibility with existing benchmark results.
func TotalCost(vehicles []*pdp.Vehicle, calls []*pdp.Call) float64 {
	var cost float64
	for _, c := range calls {
		cost += c.VoidCost()
	}
	for _, v := range vehicles {
		cost += v.Cost()
	}

	return cost
}

// activeVehicles returns, in input order, the vehicles whose current
// state has at least one registered branch.
func activeVehicles(vehicles []*pdp.Vehicle) []*pdp.Vehicle {
	active := make([]*pdp.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if len(v.Current().Branches()) > 0 {
			active = append(active, v)
		}
	}

	return active
}

// actionSequences collects each vehicle's committed route, ordered by
// vehicle index.
func actionSequences(vehicles []*pdp.Vehicle) [][]*pdp.Action {
	ordered := make([]*pdp.Vehicle, len(vehicles))
	copy(ordered, vehicles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Specs().Index < ordered[j].Specs().Index
	})

	out := make([][]*pdp.Action, len(ordered))
	for i, v := range ordered {
		out[i] = v.ActionSequence()
	}

	return out
}
