// Package instance loads PDPTW problem instances from their flat text
// format into pdp vehicles and calls.
//
// Format: `%`-prefixed lines are comments and advance a zero-based
// section index (blank lines do too); all numeric fields are
// comma-separated integers; IDs are 1-indexed in the file and 0-indexed
// in memory.
//
//	section 0: node count
//	section 1: vehicle count
//	section 2: per vehicle: id, start node, start time, capacity
//	section 3: call count
//	section 4: per vehicle: id, compatible call ids…
//	section 5: per call: id, pickup node, delivery node, size, void cost,
//	           pickup window, delivery window
//	section 6: per (vehicle, from, to): travel time, travel cost
//	section 7: per (vehicle, call): pickup/delivery service time and cost
//
// Errors:
//
//   - A missing file surfaces as a wrapped I/O error from Load.
//   - ErrBadHeader: a header count (sections 0, 1, 3) missing or
//     malformed — raised before any Vehicle or Call is built.
//   - ErrBadRecord: a malformed or out-of-range data record.
package instance
