// Package construct - policies, options, sentinels, and result shapes.
package construct

import (
	"errors"
	"time"

	"github.com/katalvlaran/pdroute/pdp"
)

// Sentinel errors for option and driver validation.
var (
	// ErrUnknownPolicy is returned for a Policy outside the defined set.
	ErrUnknownPolicy = errors.New("construct: unknown selection policy")

	// ErrBeamWidth is returned for a non-positive beam width.
	ErrBeamWidth = errors.New("construct: beam width must be positive")

	// ErrBeamDepth is returned for a non-positive beam depth.
	ErrBeamDepth = errors.New("construct: beam depth must be positive")

	// ErrNegativeLimit is returned for negative step/time/feasibility budgets.
	ErrNegativeLimit = errors.New("construct: budgets must be non-negative")

	// ErrNoTrials is returned for a non-positive multi-start trial count.
	ErrNoTrials = errors.New("construct: trial count must be positive")
)

// Policy selects how the next (vehicle, action) pair is chosen.
type Policy int

const (
	// RandomPolicy draws uniformly over all (vehicle, action) pairs.
	RandomPolicy Policy = iota
	// CostGreedy takes the pair with the lowest immediate marginal cost.
	CostGreedy
	// TimeGreedy takes the pair with the smallest time delta (quickest leg).
	TimeGreedy
	// BeamLookahead runs a bounded best-first lookahead per vehicle and
	// commits the opening action of the cheapest sequence.
	BeamLookahead
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case RandomPolicy:
		return "random"
	case CostGreedy:
		return "cost-greedy"
	case TimeGreedy:
		return "time-greedy"
	case BeamLookahead:
		return "beam-lookahead"
	default:
		return "policy(?)"
	}
}

// Options configures one construction run. The zero value is not valid;
// start from DefaultOptions.
type Options struct {
	// Policy selects the (vehicle, action) strategy.
	Policy Policy

	// Seed routes all randomness (RandomPolicy). Identical seeds give
	// identical runs; there is no time-based fallback.
	Seed int64

	// BeamWidth / BeamDepth bound the BeamLookahead frontier. Ignored by
	// the other policies but validated regardless.
	BeamWidth int
	BeamDepth int

	// MaxSteps, if > 0, caps the number of committed actions per run.
	// The partial assignment produced at the cap is still consistent.
	MaxSteps int

	// TimeLimit, if > 0, bounds one run's wall-clock time, checked once
	// per committed action.
	TimeLimit time.Duration

	// FeasibilityBudget, if > 0, caps each deliverability check's probe
	// count (see pdp.Vehicle.SetFeasibilityBudget).
	FeasibilityBudget int
}

// DefaultOptions returns a deterministic cost-greedy configuration with a
// narrow beam (width 2, depth 2) and no budgets.
func DefaultOptions() Options {
	return Options{
		Policy:    CostGreedy,
		BeamWidth: 2,
		BeamDepth: 2,
	}
}

// validateOptions checks internal consistency of opts.
func validateOptions(opts Options) error {
	switch opts.Policy {
	case RandomPolicy, CostGreedy, TimeGreedy, BeamLookahead:
		// ok
	default:
		return ErrUnknownPolicy
	}
	if opts.BeamWidth < 1 {
		return ErrBeamWidth
	}
	if opts.BeamDepth < 1 {
		return ErrBeamDepth
	}
	if opts.MaxSteps < 0 || opts.TimeLimit < 0 || opts.FeasibilityBudget < 0 {
		return ErrNegativeLimit
	}

	return nil
}

// Result is the outcome of a single construction run.
type Result struct {
	// Sequences holds each vehicle's committed actions in execution
	// order, ordered by vehicle index.
	Sequences [][]*pdp.Action

	// Cost is TotalCost over the run's vehicles and calls.
	Cost float64

	// Unserved lists the calls left unanswered, ascending by index.
	Unserved []*pdp.Call
}

// Stop is one route record: which leg of which call, where, and within
// which window.
type Stop struct {
	Role     pdp.Role `json:"role"`
	Call     int      `json:"call"`
	Node     int      `json:"node"`
	Earliest float64  `json:"earliest"`
	Latest   float64  `json:"latest"`
}

// Route is one vehicle's stop sequence in execution order.
type Route struct {
	Vehicle int    `json:"vehicle"`
	Stops   []Stop `json:"stops"`
}

// Solution is the best assignment found by MultiSolve.
type Solution struct {
	Routes   []Route `json:"routes"`
	Cost     float64 `json:"cost"`
	Unserved []int   `json:"unserved,omitempty"`
}
