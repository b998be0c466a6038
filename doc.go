// Package pdroute builds vehicle routes for pickup-and-delivery problems
// with time windows (PDPTW): a fleet of vehicles serves transport
// requests ("calls"), each a pickup and a matching delivery inside time
// windows, under per-vehicle capacity and compatibility constraints.
// Calls left unserved pay a void penalty.
//
// 🚚 What is pdroute?
//
//	An incremental construction engine — it commits one feasible action at
//	a time, never backtracking, and restarts to keep the best assignment:
//		• pdp/       — the request model, per-vehicle lazy search trees,
//		               and the recursive deliverability check
//		• beam/      — a small generic bounded best-first search
//		• construct/ — selection policies (random, cost-greedy, time-greedy,
//		               beam lookahead), the construction loop, and the
//		               multi-start Solver
//		• instance/  — the flat text problem-file loader
//
// ✨ Why choose pdroute?
//
//   - Deterministic – no time-based randomness, ordered iteration, seeded
//     policies; equal seeds give equal routes
//   - Strict sentinels – every failure mode is a comparable error value;
//     infeasibility is a plain control-flow outcome, never an error
//   - Bounded – optional step, wall-clock and feasibility-probe budgets
//     keep the exponential corners in check
//
// A daemon wrapping the solver over HTTP lives in cmd/pdrouted.
//
//	go get github.com/katalvlaran/pdroute
package pdroute
