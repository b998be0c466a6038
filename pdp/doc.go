// Package pdp models a Pickup-and-Delivery Problem with Time Windows
// (PDPTW) and provides the per-vehicle lazy search tree that incremental
// construction heuristics are built on.
//
// What:
//
//   - Call / Action: immutable transport requests; each Call owns exactly
//     one Pickup and one Delivery action with a node and a time window.
//   - CallSet: ordered set of calls with deterministic ascending iteration.
//   - State: a node in a vehicle's search tree (location, time, open
//     commitments, load) owning its feasible branches.
//   - Vehicle: specs + cost/time matrices wrapped around a State tree with
//     a "current" pointer; exposes Expand, Perform, Select, Remove, Reset
//     and the route cost.
//   - Feasibility engine: recursive check that every open commitment can
//     still be delivered in some order under capacity and time windows.
//
// Why:
//
//   - Construction heuristics need cheap, incremental feasibility pruning:
//     a branch is registered only if the resulting state still admits a
//     deliverable ordering of its commitments.
//   - Cross-vehicle claiming needs safe subtree pruning: Remove detaches
//     every branch of a claimed call anywhere in the tree, idempotently.
//
// Complexity:
//
//   - Expand:      O(B·F) where B is the candidate branch count and F the
//     feasibility check cost.
//   - Feasibility: exponential in the number of open commitments in the
//     worst case (capacity bounds it in practice); an optional step budget
//     turns exhaustion into conservative infeasibility.
//   - Remove/Reset: O(size of the subtree).
//
// Errors:
//
//   - ErrBadRole, ErrTimeWindow, ErrCallShape: malformed model input.
//   - ErrUnlinkedAction: call-dependent access on an action no Call owns.
//   - ErrUnknownAction: selecting an unregistered branch (caller misuse).
//   - ErrNilState: constructing a Vehicle without an initial state.
//
// Expected infeasibility (a time window missed, an incompatible call, no
// deliverable ordering) is never an error: Perform returns nil and the
// candidate simply does not become a branch.
package pdp
