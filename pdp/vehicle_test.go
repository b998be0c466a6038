package pdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdroute/pdp"
)

// makeCall builds a linked call with explicit nodes and windows.
func makeCall(t *testing.T, idx int, size, void float64, pNode, dNode int, pw, dw [2]float64) *pdp.Call {
	t.Helper()

	p, err := pdp.NewPickup(pNode, pw[0], pw[1])
	require.NoError(t, err)
	d, err := pdp.NewDelivery(dNode, dw[0], dw[1])
	require.NoError(t, err)
	c, err := pdp.NewCall(idx, size, void, p, d)
	require.NoError(t, err)

	return c
}

// twoNodeVehicle builds a capacity-10 vehicle on a two-node world:
// travel time 5 and travel cost 2 between the nodes, all service
// times/costs zero, starting at node 0 time 0.
func twoNodeVehicle(t *testing.T, compatible ...*pdp.Call) *pdp.Vehicle {
	t.Helper()

	nCalls := 0
	for _, c := range compatible {
		if c.Index()+1 > nCalls {
			nCalls = c.Index() + 1
		}
	}

	specs := pdp.VehicleSpecs{Index: 0, Capacity: 10, Compatible: pdp.NewCallSet(compatible...)}
	costs := pdp.VehicleCosts{
		Travel:  [][]float64{{0, 2}, {2, 0}},
		Service: make([][2]float64, nCalls),
	}
	times := pdp.VehicleTimes{
		Travel:  [][]float64{{0, 5}, {5, 0}},
		Service: make([][2]float64, nCalls),
	}

	v, err := pdp.NewVehicle(pdp.NewState(0, 0), specs, costs, times)
	require.NoError(t, err)

	return v
}

// TestNewVehicle_NilState verifies the constructor sentinel.
func TestNewVehicle_NilState(t *testing.T) {
	_, err := pdp.NewVehicle(nil, pdp.VehicleSpecs{}, pdp.VehicleCosts{}, pdp.VehicleTimes{})
	assert.ErrorIs(t, err, pdp.ErrNilState)
}

// TestVehicle_ServeSingleCall walks one call end to end: pickup then
// delivery, checking load, clock, route, and the rebated cost.
func TestVehicle_ServeSingleCall(t *testing.T) {
	c := makeCall(t, 0, 5, 100, 0, 1, [2]float64{0, 0}, [2]float64{0, 100})
	v := twoNodeVehicle(t, c)
	unanswered := pdp.NewCallSet(c)

	v.Expand(unanswered)
	branches := v.Current().Branches()
	require.Len(t, branches, 1, "only the pickup is a candidate from the root")
	require.True(t, branches[0].Action.Equal(c.Pickup()))

	require.NoError(t, v.Select(c.Pickup()))
	unanswered.Remove(c.Index())
	assert.Equal(t, 5.0, v.Current().Load(), "load after pickup is the call size")
	assert.Len(t, v.Current().Commitments(), 1)

	v.Expand(unanswered)
	require.NoError(t, v.Select(c.Delivery()))
	assert.Equal(t, 0.0, v.Current().Load(), "load after delivery returns to zero")
	assert.Equal(t, 5.0, v.Current().Time(), "clock advances by the travel time")
	assert.Empty(t, v.Current().Commitments())

	seq := v.ActionSequence()
	require.Len(t, seq, 2)
	assert.True(t, seq[0].Equal(c.Pickup()))
	assert.True(t, seq[1].Equal(c.Delivery()))
	assert.Equal(t, 2, v.RouteLength())

	// travel 2, service 0, minus 100/2 per leg.
	assert.Equal(t, -98.0, v.Cost())
}

// TestVehicle_UnreachableDeliveryWindow: the delivery closes before the
// vehicle can arrive, so even the pickup is rejected (no deliverable
// continuation) and the route stays empty at cost 0.
func TestVehicle_UnreachableDeliveryWindow(t *testing.T) {
	c := makeCall(t, 0, 5, 100, 0, 1, [2]float64{0, 0}, [2]float64{0, 3})
	v := twoNodeVehicle(t, c)

	assert.Nil(t, v.Perform(c.Pickup()), "pickup with an undeliverable commitment must be infeasible")

	v.Expand(pdp.NewCallSet(c))
	assert.Empty(t, v.Current().Branches())
	assert.Equal(t, 0.0, v.Cost(), "empty route costs 0")
}

// TestVehicle_PerformRejections covers the expected infeasibility cases:
// none of them is an error, all yield a nil state.
func TestVehicle_PerformRejections(t *testing.T) {
	served := makeCall(t, 0, 5, 100, 0, 1, [2]float64{0, 100}, [2]float64{0, 100})
	v := twoNodeVehicle(t, served)

	incompatible := makeCall(t, 1, 1, 10, 0, 1, [2]float64{0, 100}, [2]float64{0, 100})
	assert.Nil(t, v.Perform(incompatible.Pickup()), "incompatible call")

	assert.Nil(t, v.Perform(served.Delivery()), "delivery without an open commitment")

	lateWindow := makeCall(t, 0, 1, 10, 1, 0, [2]float64{0, 3}, [2]float64{0, 100})
	lateVehicle := twoNodeVehicle(t, lateWindow)
	assert.Nil(t, lateVehicle.Perform(lateWindow.Pickup()), "arrival after the window closes")

	oversized := makeCall(t, 0, 11, 10, 0, 1, [2]float64{0, 100}, [2]float64{0, 100})
	bigVehicle := twoNodeVehicle(t, oversized)
	assert.Nil(t, bigVehicle.Perform(oversized.Pickup()), "load above capacity")
}

// TestVehicle_RemoveAndReset verifies cross-vehicle pruning and the
// between-trials rewind.
func TestVehicle_RemoveAndReset(t *testing.T) {
	c := makeCall(t, 0, 5, 100, 0, 1, [2]float64{0, 100}, [2]float64{0, 100})
	v := twoNodeVehicle(t, c)
	unanswered := pdp.NewCallSet(c)

	v.Expand(unanswered)
	require.Len(t, v.Current().Branches(), 1)

	v.Remove(c)
	assert.Empty(t, v.Current().Branches(), "claimed call pruned from the tree")
	v.Remove(c) // idempotent

	v.Expand(unanswered)
	require.NoError(t, v.Select(c.Pickup()))
	require.Equal(t, 1, v.RouteLength())

	v.Reset()
	assert.Same(t, v.Root(), v.Current())
	assert.Equal(t, 0, v.RouteLength())
	assert.Empty(t, v.Root().Branches())
	assert.Empty(t, v.ActionSequence())
}

// TestVehicle_StepCost checks the marginal-cost key used by the greedy
// and beam policies: travel + service - voidCost/2.
func TestVehicle_StepCost(t *testing.T) {
	c := makeCall(t, 0, 5, 100, 0, 1, [2]float64{0, 100}, [2]float64{0, 100})
	v := twoNodeVehicle(t, c)

	assert.Equal(t, -50.0, v.ActionCost(c.Pickup()), "0 travel + 0 service - 50 rebate")
	assert.Equal(t, -48.0, v.StepCost(v.Current(), c.Delivery()), "2 travel + 0 service - 50 rebate")
}

// TestVehicle_ExpandDepth verifies the lookahead pre-registers branches
// below the frontier, excluding the call claimed on each path.
func TestVehicle_ExpandDepth(t *testing.T) {
	c := makeCall(t, 0, 5, 100, 0, 1, [2]float64{0, 100}, [2]float64{0, 100})
	v := twoNodeVehicle(t, c)

	v.ExpandDepth(pdp.NewCallSet(c), 2)

	root := v.Current().Branches()
	require.Len(t, root, 1)
	below := root[0].Next.Branches()
	require.Len(t, below, 1, "the delivery must be pre-registered one level down")
	assert.True(t, below[0].Action.Equal(c.Delivery()))
}
