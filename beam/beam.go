package beam

import (
	"errors"
	"sort"
)

// Sentinel errors for Search input validation.
var (
	// ErrWidth is returned for a non-positive beam width.
	ErrWidth = errors.New("beam: width must be positive")

	// ErrDepth is returned for a non-positive depth bound.
	ErrDepth = errors.New("beam: max depth must be positive")

	// ErrNilSuccessor is returned when no successor function is supplied.
	ErrNilSuccessor = errors.New("beam: successor function is nil")

	// ErrNilTerminal is returned when no terminal predicate is supplied.
	ErrNilTerminal = errors.New("beam: terminal predicate is nil")
)

// Step is one expansion produced by a Successor: the next state, the
// label recorded in the output sequence, and the incremental cost.
type Step[S, L any] struct {
	Next  S
	Label L
	Cost  float64
}

// Successor produces every one-step expansion of a state. Returning an
// empty slice marks the state as a dead end (it simply stops growing).
type Successor[S, L any] func(S) []Step[S, L]

// Options bounds the search frontier.
type Options struct {
	// Width is the number of lowest-cost sequences retained per depth.
	Width int
	// MaxDepth is the number of expansion rounds before stopping.
	MaxDepth int
}

// DefaultOptions returns a narrow, shallow beam: Width 2, MaxDepth 2.
func DefaultOptions() Options {
	return Options{Width: 2, MaxDepth: 2}
}

// sequence is one retained candidate: its state, cumulative cost, and the
// labels that led there.
type sequence[S, L any] struct {
	cost   float64
	state  S
	labels []L
}

// Search runs the bounded best-first search from initial and returns the
// labels and cumulative cost of the single lowest-cost sequence found.
// An initial state with no successors yields an empty label sequence at
// cost 0.
//
// Contracts:
//   - next and terminal must be non-nil; opts bounds must be positive.
//   - Ties are broken by generation order (stable), so deterministic
//     successors give deterministic results.
//
// Errors: ErrWidth, ErrDepth, ErrNilSuccessor, ErrNilTerminal.
func Search[S, L any](initial S, next Successor[S, L], terminal func(S) bool, opts Options) ([]L, float64, error) {
	if next == nil {
		return nil, 0, ErrNilSuccessor
	}
	if terminal == nil {
		return nil, 0, ErrNilTerminal
	}
	if opts.Width < 1 {
		return nil, 0, ErrWidth
	}
	if opts.MaxDepth < 1 {
		return nil, 0, ErrDepth
	}

	front := []sequence[S, L]{{state: initial}}

	for depth := 0; depth < opts.MaxDepth; depth++ {
		var (
			grown      []sequence[S, L]
			progressed bool
		)
		for _, sq := range front {
			steps := next(sq.state)
			if len(steps) == 0 {
				// Dead ends stop growing but stay in contention.
				grown = append(grown, sq)

				continue
			}
			progressed = true
			for _, st := range steps {
				labels := make([]L, len(sq.labels), len(sq.labels)+1)
				copy(labels, sq.labels)
				labels = append(labels, st.Label)
				grown = append(grown, sequence[S, L]{
					cost:   sq.cost + st.Cost,
					state:  st.Next,
					labels: labels,
				})
			}
		}
		if !progressed {
			break
		}

		sort.SliceStable(grown, func(i, j int) bool { return grown[i].cost < grown[j].cost })
		if len(grown) > opts.Width {
			grown = grown[:opts.Width]
		}
		front = grown

		done := true
		for _, sq := range front {
			if !terminal(sq.state) {
				done = false

				break
			}
		}
		if done {
			break
		}
	}

	best := front[0]
	for _, sq := range front[1:] {
		if sq.cost < best.cost {
			best = sq
		}
	}

	return best.labels, best.cost, nil
}
