// Package construct drives PDPTW route construction over pdp search
// trees: pluggable (vehicle, action) selection policies, the incremental
// construction loop, and a multi-start driver that keeps the best of n
// trials.
//
// What:
//
//   - Options + Policy: explicit configuration of the policy, the rng
//     seed, the beam bounds, and optional step/time budgets.
//   - Construct: one full construction run — expand, pick, select, claim,
//     re-expand — until no vehicle has a feasible next action.
//   - Solver: loads an instance (or wraps an in-memory problem), runs n
//     sequential trials with resets in between, returns the lowest-cost
//     assignment as per-vehicle stop records.
//   - TotalCost: Σ void costs over all calls + Σ vehicle route costs.
//     The per-leg void rebate inside the vehicle cost makes a served call
//     net zero penalty and an unserved call pay in full.
//
// Why:
//
//   - The policies differ only in how the next (vehicle, action) pair is
//     chosen; everything else — claiming, pruning, re-expansion — is one
//     loop shared by all of them.
//
// Determinism: CostGreedy and TimeGreedy scan vehicles in slice order and
// branches in insertion order, taking the first strictly better pair, so
// repeated trials are bit-identical. RandomPolicy and any randomized
// tie-breaking draw from a seed-routed rng; no time-based randomness.
//
// Errors:
//
//   - ErrUnknownPolicy, ErrBeamWidth, ErrBeamDepth, ErrNegativeLimit:
//     option validation.
//   - ErrNoTrials: MultiSolve with a non-positive trial count.
//
// Infeasibility never surfaces here: vehicles without feasible actions
// simply drop out of the active set, and construction ends when that set
// is empty.
package construct
