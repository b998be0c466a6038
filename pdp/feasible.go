// Package pdp - the recursive deliverability check behind Perform.
//
// Given a candidate state, decide whether the vehicle can still complete
// every open commitment in *some* order without violating capacity or any
// delivery window. The order actions are later selected in may differ;
// only existence matters here.
package pdp

import (
	"math"
	"sort"
)

// deliverableFrom reports whether every open commitment of s can still be
// completed. Deliveries are scanned in ascending deadline order
// (earliest-deadline-first) but all of them are tried as the next leg,
// recursing on the remainder.
//
// Worst case exponential in len(commitments); capacity bounds the open
// count in practice. A positive feasibility budget caps the number of
// candidate probes, treating exhaustion as infeasible (conservative:
// the branch is dropped, never a constraint violation admitted).
func (v *Vehicle) deliverableFrom(s *State) bool {
	if len(s.commitments) == 0 {
		return true
	}

	open := make([]*Action, len(s.commitments))
	copy(open, s.commitments)
	sort.SliceStable(open, func(i, j int) bool { return open[i].latest < open[j].latest })

	if v.feasBudget > 0 {
		budget := v.feasBudget

		return v.deliverable(s.node, s.time, s.load, open, &budget)
	}

	return v.deliverable(s.node, s.time, s.load, open, nil)
}

// deliverable tries every open delivery as the next leg. open is sorted by
// ascending deadline and is not mutated; rest is rebuilt per candidate.
func (v *Vehicle) deliverable(node int, now, load float64, open []*Action, budget *int) bool {
	if len(open) == 0 {
		return true
	}

	rest := make([]*Action, 0, len(open)-1)
	var (
		d       *Action
		newLoad float64
		arrival float64
		done    float64
	)
	for i := 0; i < len(open); i++ {
		if budget != nil {
			*budget--
			if *budget < 0 {
				return false
			}
		}

		d = open[i]
		newLoad = load + d.loadDelta()
		if newLoad > v.specs.Capacity {
			continue
		}

		arrival = now + v.times.Travel[node][d.node]
		if arrival > d.latest {
			continue
		}
		done = math.Max(arrival, d.earliest) + v.times.Service[d.call.idx][Delivery]

		rest = rest[:0]
		rest = append(rest, open[:i]...)
		rest = append(rest, open[i+1:]...)
		if v.deliverable(d.node, done, newLoad, rest, budget) {
			return true
		}
	}

	return false
}
