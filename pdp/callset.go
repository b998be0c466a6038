// Package pdp - CallSet, an ordered mutable set of calls.
//
// Go map iteration order is randomized; every result-bearing loop in this
// module instead iterates calls in ascending index order so deterministic
// policies stay reproducible across runs.
package pdp

import "sort"

// CallSet is a mutable set of calls keyed by call index with deterministic
// ascending-index iteration. The zero value is not usable; use NewCallSet.
type CallSet struct {
	byIdx  map[int]*Call
	sorted []*Call // cached ascending order; nil when stale
}

// NewCallSet returns a set containing the given calls.
// Duplicate indices collapse to the last occurrence.
func NewCallSet(calls ...*Call) *CallSet {
	s := &CallSet{byIdx: make(map[int]*Call, len(calls))}
	for _, c := range calls {
		s.byIdx[c.idx] = c
	}

	return s
}

// Add inserts c, replacing any call with the same index.
func (s *CallSet) Add(c *Call) {
	s.byIdx[c.idx] = c
	s.sorted = nil
}

// Remove deletes the call with index idx; absent indices are a no-op.
func (s *CallSet) Remove(idx int) {
	if _, ok := s.byIdx[idx]; !ok {
		return
	}
	delete(s.byIdx, idx)
	s.sorted = nil
}

// Contains reports whether a call with index idx is present.
func (s *CallSet) Contains(idx int) bool {
	_, ok := s.byIdx[idx]

	return ok
}

// Get returns the call with index idx, if present.
func (s *CallSet) Get(idx int) (*Call, bool) {
	c, ok := s.byIdx[idx]

	return c, ok
}

// Len returns the number of calls in the set.
func (s *CallSet) Len() int { return len(s.byIdx) }

// Calls returns the members in ascending index order.
// The returned slice is a cached view; callers must not mutate it.
func (s *CallSet) Calls() []*Call {
	if s.sorted == nil {
		s.sorted = make([]*Call, 0, len(s.byIdx))
		for _, c := range s.byIdx {
			s.sorted = append(s.sorted, c)
		}
		sort.Slice(s.sorted, func(i, j int) bool { return s.sorted[i].idx < s.sorted[j].idx })
	}

	return s.sorted
}

// Clone returns an independent copy of the set.
func (s *CallSet) Clone() *CallSet {
	out := &CallSet{byIdx: make(map[int]*Call, len(s.byIdx))}
	for idx, c := range s.byIdx {
		out.byIdx[idx] = c
	}

	return out
}
