package pdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdroute/pdp"
)

// newCall builds a linked call with the given index and size and trivial
// windows; test helper shared across the package tests.
func newCall(t *testing.T, idx int, size float64) *pdp.Call {
	t.Helper()

	p, err := pdp.NewPickup(0, 0, 100)
	require.NoError(t, err)
	d, err := pdp.NewDelivery(1, 0, 100)
	require.NoError(t, err)
	c, err := pdp.NewCall(idx, size, 10, p, d)
	require.NoError(t, err)

	return c
}

// TestNewAction_Validation verifies role and window validation.
func TestNewAction_Validation(t *testing.T) {
	_, err := pdp.NewAction(pdp.Role(9), 0, 0, 1)
	assert.ErrorIs(t, err, pdp.ErrBadRole, "out-of-range role must error")

	_, err = pdp.NewPickup(0, 5, 1)
	assert.ErrorIs(t, err, pdp.ErrTimeWindow, "earliest > latest must error")

	a, err := pdp.NewDelivery(3, 2, 2)
	assert.NoError(t, err, "earliest == latest is a valid degenerate window")
	assert.Equal(t, pdp.Delivery, a.Role())
	assert.Equal(t, 3, a.Node())
	assert.Equal(t, 2.0, a.EarliestTime())
	assert.Equal(t, 2.0, a.LatestTime())
}

// TestAction_UnlinkedAccess ensures call-dependent accessors refuse to
// operate before NewCall links the action.
func TestAction_UnlinkedAccess(t *testing.T) {
	a, err := pdp.NewPickup(0, 0, 10)
	require.NoError(t, err)

	_, err = a.Call()
	assert.ErrorIs(t, err, pdp.ErrUnlinkedAction)
	_, err = a.CallIndex()
	assert.ErrorIs(t, err, pdp.ErrUnlinkedAction)
	_, err = a.LoadDelta()
	assert.ErrorIs(t, err, pdp.ErrUnlinkedAction)
	_, err = a.Key()
	assert.ErrorIs(t, err, pdp.ErrUnlinkedAction)
	assert.Equal(t, "Pickup(unlinked)", a.String())
}

// TestNewCall_Shape covers the malformed-call constructions.
func TestNewCall_Shape(t *testing.T) {
	p, _ := pdp.NewPickup(0, 0, 10)
	d, _ := pdp.NewDelivery(1, 0, 10)

	_, err := pdp.NewCall(0, 1, 10, nil, d)
	assert.ErrorIs(t, err, pdp.ErrCallShape, "nil pickup")

	_, err = pdp.NewCall(0, 1, 10, p, nil)
	assert.ErrorIs(t, err, pdp.ErrCallShape, "nil delivery")

	_, err = pdp.NewCall(0, -1, 10, p, d)
	assert.ErrorIs(t, err, pdp.ErrCallShape, "negative size")

	_, err = pdp.NewCall(0, 1, 10, d, p)
	assert.ErrorIs(t, err, pdp.ErrCallShape, "swapped roles")

	// Linking succeeds once, then both actions are taken.
	_, err = pdp.NewCall(0, 1, 10, p, d)
	require.NoError(t, err)
	d2, _ := pdp.NewDelivery(1, 0, 10)
	_, err = pdp.NewCall(1, 1, 10, p, d2)
	assert.ErrorIs(t, err, pdp.ErrCallShape, "re-linking an owned action")
}

// TestCall_Linkage verifies back-references, load deltas, and keys.
func TestCall_Linkage(t *testing.T) {
	c := newCall(t, 7, 5)

	for _, a := range []*pdp.Action{c.Pickup(), c.Delivery()} {
		owner, err := a.Call()
		require.NoError(t, err)
		assert.Same(t, c, owner)

		idx, err := a.CallIndex()
		require.NoError(t, err)
		assert.Equal(t, 7, idx)
	}

	dp, err := c.Pickup().LoadDelta()
	require.NoError(t, err)
	assert.Equal(t, 5.0, dp, "pickup delta is +size")

	dd, err := c.Delivery().LoadDelta()
	require.NoError(t, err)
	assert.Equal(t, -5.0, dd, "delivery delta is -size")

	key, err := c.Pickup().Key()
	require.NoError(t, err)
	assert.Equal(t, pdp.ActionKey{Call: 7, Role: pdp.Pickup}, key)

	assert.Equal(t, "Pickup(7)", c.Pickup().String())
	assert.Equal(t, "Call-7", c.String())
}

// TestAction_Equal checks (call, role) identity semantics.
func TestAction_Equal(t *testing.T) {
	a := newCall(t, 0, 1)
	b := newCall(t, 1, 1)

	assert.True(t, a.Pickup().Equal(a.Pickup()), "same pointer")
	assert.False(t, a.Pickup().Equal(a.Delivery()), "same call, different role")
	assert.False(t, a.Pickup().Equal(b.Pickup()), "different call")
	assert.False(t, a.Pickup().Equal(nil), "nil other")

	unlinked, _ := pdp.NewPickup(0, 0, 1)
	assert.False(t, unlinked.Equal(a.Pickup()), "unlinked equals only itself")
	assert.True(t, unlinked.Equal(unlinked))
}
