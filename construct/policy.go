// Package construct - the four (vehicle, action) selection policies.
//
// Common contract: given the active vehicles (each with at least one
// registered branch from its current state), return exactly one
// (vehicle, action) pair drawn from a vehicle's current branches.
package construct

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/pdroute/beam"
	"github.com/katalvlaran/pdroute/pdp"
)

// picker carries the policy configuration and the seed-routed rng shared
// across the trials of one multi-start run (so randomized trials differ
// while the whole run stays reproducible).
type picker struct {
	opts Options
	rng  *rand.Rand
}

func newPicker(opts Options) *picker {
	return &picker{opts: opts, rng: rand.New(rand.NewSource(opts.Seed))}
}

// pick dispatches to the configured policy. active is never empty.
func (pk *picker) pick(active []*pdp.Vehicle, unanswered *pdp.CallSet) (*pdp.Vehicle, *pdp.Action) {
	switch pk.opts.Policy {
	case RandomPolicy:
		return pk.pickRandom(active)
	case TimeGreedy:
		return pickTimeGreedy(active)
	case BeamLookahead:
		return pk.pickBeam(active, unanswered)
	default: // CostGreedy; validated upstream
		return pickCostGreedy(active)
	}
}

// pickRandom draws uniformly over the union of all (vehicle, action)
// pairs across active vehicles.
func (pk *picker) pickRandom(active []*pdp.Vehicle) (*pdp.Vehicle, *pdp.Action) {
	total := 0
	for _, v := range active {
		total += len(v.Current().Branches())
	}

	n := pk.rng.Intn(total)
	for _, v := range active {
		branches := v.Current().Branches()
		if n < len(branches) {
			return v, branches[n].Action
		}
		n -= len(branches)
	}

	// Unreachable: total counted above.
	return active[0], active[0].Current().Branches()[0].Action
}

// pickCostGreedy scans all branches of all active vehicles and takes the
// pair minimizing the immediate marginal cost
// (travel + service - voidCost/2). First strictly better pair wins, so
// ties resolve to the earliest (vehicle order, insertion order) pair.
func pickCostGreedy(active []*pdp.Vehicle) (*pdp.Vehicle, *pdp.Action) {
	var (
		bestCost    = math.Inf(1)
		bestVehicle *pdp.Vehicle
		bestAction  *pdp.Action
		cost        float64
	)
	for _, v := range active {
		for _, b := range v.Current().Branches() {
			cost = v.ActionCost(b.Action)
			if cost < bestCost {
				bestCost = cost
				bestVehicle = v
				bestAction = b.Action
			}
		}
	}

	return bestVehicle, bestAction
}

// pickTimeGreedy takes the pair minimizing the time delta between the
// resulting state and the vehicle's current state: the quickest next
// action, one step ahead. Same tie-breaking as pickCostGreedy.
func pickTimeGreedy(active []*pdp.Vehicle) (*pdp.Vehicle, *pdp.Action) {
	var (
		bestDelta   = math.Inf(1)
		bestVehicle *pdp.Vehicle
		bestAction  *pdp.Action
		now         float64
		delta       float64
	)
	for _, v := range active {
		now = v.Current().Time()
		for _, b := range v.Current().Branches() {
			delta = b.Next.Time() - now
			if delta < bestDelta {
				bestDelta = delta
				bestVehicle = v
				bestAction = b.Action
			}
		}
	}

	return bestVehicle, bestAction
}

// pickBeam deepens each active vehicle's tree BeamDepth levels, runs a
// bounded best-first search over the registered branches, and commits the
// opening action of the cheapest sequence found across vehicles.
// Sequence cost is the sum of per-leg StepCost, the same key the greedy
// policy minimizes one step at a time.
func (pk *picker) pickBeam(active []*pdp.Vehicle, unanswered *pdp.CallSet) (*pdp.Vehicle, *pdp.Action) {
	opts := beam.Options{Width: pk.opts.BeamWidth, MaxDepth: pk.opts.BeamDepth}

	var (
		bestCost    = math.Inf(1)
		bestVehicle *pdp.Vehicle
		bestAction  *pdp.Action
	)
	for _, v := range active {
		v.ExpandDepth(unanswered, pk.opts.BeamDepth)

		successors := func(s *pdp.State) []beam.Step[*pdp.State, *pdp.Action] {
			branches := s.Branches()
			steps := make([]beam.Step[*pdp.State, *pdp.Action], 0, len(branches))
			for _, b := range branches {
				steps = append(steps, beam.Step[*pdp.State, *pdp.Action]{
					Next:  b.Next,
					Label: b.Action,
					Cost:  v.StepCost(s, b.Action),
				})
			}

			return steps
		}
		terminal := func(s *pdp.State) bool { return len(s.Branches()) == 0 }

		labels, cost, err := beam.Search(v.Current(), successors, terminal, opts)
		if err != nil || len(labels) == 0 {
			// Options are validated upstream and active vehicles always
			// admit a depth-1 sequence; nothing to do here but skip.
			continue
		}
		if cost < bestCost {
			bestCost = cost
			bestVehicle = v
			bestAction = labels[0]
		}
	}

	if bestVehicle == nil {
		// Defensive fallback; active vehicles make this unreachable.
		return pickCostGreedy(active)
	}

	return bestVehicle, bestAction
}
