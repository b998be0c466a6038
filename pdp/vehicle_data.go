// Package pdp - immutable per-vehicle data bundles.
//
// Matrices are dense: Travel is node×node, Service is call×role with the
// Role value as the column index. The loader guarantees the shapes; the
// hot path indexes without bounds checks beyond the runtime's own.
package pdp

// VehicleSpecs holds a vehicle's basic attributes. Immutable after load.
type VehicleSpecs struct {
	// Index is the vehicle's unique, zero-based index.
	Index int
	// Capacity bounds the total size of simultaneously open commitments.
	Capacity float64
	// Compatible is the set of calls this vehicle may pick up.
	Compatible *CallSet
}

// VehicleCosts holds a vehicle's travel and service cost matrices.
type VehicleCosts struct {
	// Travel[from][to] is the cost of moving between two nodes.
	Travel [][]float64
	// Service[call][role] is the cost of performing that leg of the call.
	Service [][2]float64
}

// VehicleTimes holds a vehicle's travel and service time matrices,
// shaped exactly like VehicleCosts.
type VehicleTimes struct {
	// Travel[from][to] is the driving time between two nodes.
	Travel [][]float64
	// Service[call][role] is the on-site duration of that leg of the call.
	Service [][2]float64
}
