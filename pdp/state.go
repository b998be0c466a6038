// Package pdp - the per-vehicle lazy search tree.
//
// A State is exclusively owned by its parent (a tree, never a DAG), and
// distinct vehicles never share State nodes. Branches are stored as an
// ordered slice plus a key index: insertion order is the iteration order,
// which keeps deterministic policies reproducible (Go map iteration would
// not be).
package pdp

// Branch pairs a registered action with the state that performing it
// produces.
type Branch struct {
	Action *Action
	Next   *State
}

// State is a node in a vehicle's search tree: the location, the clock,
// the open commitments (deliveries still owed), and the load after some
// prefix of actions.
//
// Invariants:
//   - Load equals the sum of sizes of the committed calls.
//   - Every registered branch was produced by simulating its action from
//     this state under the owning vehicle's matrices.
type State struct {
	node int
	time float64
	load float64

	// commitments holds the open deliveries in ascending call index.
	commitments []*Action

	branches []Branch
	index    map[ActionKey]int // key -> position in branches

	selected *Action
	next     *State
}

// NewState returns a fresh root state with no commitments and zero load.
func NewState(node int, time float64) *State {
	return &State{node: node, time: time}
}

// newChildState builds a non-root state with precomputed load. The caller
// (Vehicle.performFrom) guarantees load matches the commitment sizes.
func newChildState(node int, time float64, commitments []*Action, load float64) *State {
	return &State{node: node, time: time, commitments: commitments, load: load}
}

// Node returns the state's node index.
func (s *State) Node() int { return s.node }

// Time returns the clock after reaching and servicing this state.
func (s *State) Time() float64 { return s.time }

// Load returns the total size of the open commitments.
func (s *State) Load() float64 { return s.load }

// Commitments returns the open deliveries in ascending call index.
// The returned slice is a read-only view.
func (s *State) Commitments() []*Action { return s.commitments }

// Branches returns the registered branches in insertion order.
// The returned slice is a read-only view.
func (s *State) Branches() []Branch { return s.branches }

// Selected returns the action chosen by Select, or nil.
func (s *State) Selected() *Action { return s.selected }

// Next returns the child reached by action, if the branch is registered.
func (s *State) Next(action *Action) (*State, bool) {
	key, err := action.Key()
	if err != nil {
		return nil, false
	}
	pos, ok := s.index[key]
	if !ok {
		return nil, false
	}

	return s.branches[pos].Next, true
}

// AddTransition registers a feasible branch. The caller guarantees child
// was produced by simulating action from this state. Registering the same
// action again replaces the previous child.
//
// Errors: ErrUnlinkedAction.
func (s *State) AddTransition(action *Action, child *State) error {
	key, err := action.Key()
	if err != nil {
		return err
	}
	if s.index == nil {
		s.index = make(map[ActionKey]int)
	}
	if pos, ok := s.index[key]; ok {
		s.branches[pos] = Branch{Action: action, Next: child}

		return nil
	}
	s.index[key] = len(s.branches)
	s.branches = append(s.branches, Branch{Action: action, Next: child})

	return nil
}

// Select marks action as the chosen branch and returns its child.
//
// Errors: ErrUnknownAction when action is not a registered branch
// (protocol misuse, not an expected infeasibility).
func (s *State) Select(action *Action) (*State, error) {
	key, err := action.Key()
	if err != nil {
		return nil, err
	}
	pos, ok := s.index[key]
	if !ok {
		return nil, ErrUnknownAction
	}

	s.selected = s.branches[pos].Action
	s.next = s.branches[pos].Next

	return s.next, nil
}

// ActionSequence replays selected-action pointers from this state to the
// frontier with no further selection: the committed route so far.
func (s *State) ActionSequence() []*Action {
	var out []*Action
	for cur := s; cur != nil && cur.selected != nil; cur = cur.next {
		out = append(out, cur.selected)
	}

	return out
}

// Remove recursively deletes every branch whose action belongs to call,
// in this state and all descendants, detaching the pruned subtrees.
// Removing an absent call is a no-op (idempotent).
func (s *State) Remove(call *Call) {
	if call == nil {
		return
	}

	kept := s.branches[:0]
	for _, b := range s.branches {
		if b.Action.call == call {
			continue
		}
		kept = append(kept, b)
	}
	if len(kept) != len(s.branches) {
		// Drop trailing slots so pruned subtrees become unreachable.
		for i := len(kept); i < len(s.branches); i++ {
			s.branches[i] = Branch{}
		}
		s.branches = kept
		s.reindex()
		if s.selected != nil && s.selected.call == call {
			s.selected = nil
			s.next = nil
		}
	}

	for _, b := range s.branches {
		b.Next.Remove(call)
	}
}

// DeleteChildren recursively discards the whole subtree below this state
// and clears the selection. Used by Vehicle.Reset between trials.
func (s *State) DeleteChildren() {
	for _, b := range s.branches {
		b.Next.DeleteChildren()
	}
	s.branches = nil
	s.index = nil
	s.selected = nil
	s.next = nil
}

// reindex rebuilds the key index after branch removal.
func (s *State) reindex() {
	if len(s.branches) == 0 {
		s.index = nil

		return
	}
	s.index = make(map[ActionKey]int, len(s.branches))
	var key ActionKey
	for pos, b := range s.branches {
		key, _ = b.Action.Key()
		s.index[key] = pos
	}
}

// hasCommitment reports whether delivery is currently owed.
func (s *State) hasCommitment(delivery *Action) bool {
	for _, d := range s.commitments {
		if d == delivery {
			return true
		}
	}

	return false
}
