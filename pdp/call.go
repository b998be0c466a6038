// Package pdp - the immutable Call/Action request model.
//
// Ownership: a Call owns both of its actions; an Action keeps a plain
// non-owning back-pointer to its Call, set exactly once by NewCall.
// Nothing here mutates after construction, so the model is safe to share
// across concurrent multi-start trials.
package pdp

import "fmt"

// Action is one leg (Pickup or Delivery) of a Call: a role tag, a node,
// and a time window. Construct with NewAction (or the NewPickup /
// NewDelivery shorthands) and hand the pair to NewCall; call-dependent
// accessors return ErrUnlinkedAction until then.
type Action struct {
	role     Role
	node     int
	earliest float64
	latest   float64

	call *Call // nil until linked by NewCall
}

// NewAction validates the role and the window and returns the action.
//
// Errors: ErrBadRole, ErrTimeWindow.
func NewAction(role Role, node int, earliest, latest float64) (*Action, error) {
	if !role.Valid() {
		return nil, ErrBadRole
	}
	if earliest > latest {
		return nil, ErrTimeWindow
	}

	return &Action{role: role, node: node, earliest: earliest, latest: latest}, nil
}

// NewPickup is shorthand for NewAction(Pickup, …).
func NewPickup(node int, earliest, latest float64) (*Action, error) {
	return NewAction(Pickup, node, earliest, latest)
}

// NewDelivery is shorthand for NewAction(Delivery, …).
func NewDelivery(node int, earliest, latest float64) (*Action, error) {
	return NewAction(Delivery, node, earliest, latest)
}

// Role returns the action's role tag.
func (a *Action) Role() Role { return a.role }

// Node returns the node index where the action takes place.
func (a *Action) Node() int { return a.node }

// EarliestTime returns the opening of the action's time window.
func (a *Action) EarliestTime() float64 { return a.earliest }

// LatestTime returns the closing of the action's time window.
func (a *Action) LatestTime() float64 { return a.latest }

// Call returns the owning Call, or ErrUnlinkedAction if none linked it.
func (a *Action) Call() (*Call, error) {
	if a.call == nil {
		return nil, ErrUnlinkedAction
	}

	return a.call, nil
}

// CallIndex returns the owning call's index.
//
// Errors: ErrUnlinkedAction.
func (a *Action) CallIndex() (int, error) {
	if a.call == nil {
		return 0, ErrUnlinkedAction
	}

	return a.call.idx, nil
}

// LoadDelta returns the load change caused by the action:
// +size for Pickup, -size for Delivery.
//
// Errors: ErrUnlinkedAction.
func (a *Action) LoadDelta() (float64, error) {
	if a.call == nil {
		return 0, ErrUnlinkedAction
	}

	return a.loadDelta(), nil
}

// loadDelta is the unchecked fast path used once linkage is guaranteed.
func (a *Action) loadDelta() float64 {
	if a.role == Pickup {
		return a.call.size
	}

	return -a.call.size
}

// Key returns the (call index, role) identity of the action.
//
// Errors: ErrUnlinkedAction.
func (a *Action) Key() (ActionKey, error) {
	if a.call == nil {
		return ActionKey{}, ErrUnlinkedAction
	}

	return ActionKey{Call: a.call.idx, Role: a.role}, nil
}

// Equal reports whether two linked actions share the same (call, role)
// identity. Unlinked actions are equal only to themselves.
func (a *Action) Equal(b *Action) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.call == nil || b.call == nil {
		return false
	}

	return a.call.idx == b.call.idx && a.role == b.role
}

// String implements fmt.Stringer, e.g. "Pickup(3)".
func (a *Action) String() string {
	if a.call == nil {
		return fmt.Sprintf("%s(unlinked)", a.role)
	}

	return fmt.Sprintf("%s(%d)", a.role, a.call.idx)
}

// Call is a transport request: a pickup then a matching delivery, a size
// (capacity demand), and a void cost charged if it is never served.
// Identity and equality are by index. Immutable after construction.
type Call struct {
	idx      int
	size     float64
	voidCost float64
	pickup   *Action
	delivery *Action
}

// NewCall links pickup and delivery to a fresh Call and returns it.
// Both actions must be unlinked, carry the matching roles, and size must
// be non-negative.
//
// Errors: ErrCallShape.
func NewCall(idx int, size, voidCost float64, pickup, delivery *Action) (*Call, error) {
	if pickup == nil || delivery == nil || size < 0 {
		return nil, ErrCallShape
	}
	if pickup.role != Pickup || delivery.role != Delivery {
		return nil, ErrCallShape
	}
	if pickup.call != nil || delivery.call != nil {
		return nil, ErrCallShape
	}

	c := &Call{idx: idx, size: size, voidCost: voidCost, pickup: pickup, delivery: delivery}
	pickup.call = c
	delivery.call = c

	return c, nil
}

// Index returns the call's unique index.
func (c *Call) Index() int { return c.idx }

// Size returns the call's capacity demand.
func (c *Call) Size() float64 { return c.size }

// VoidCost returns the penalty charged if the call ends unserved.
func (c *Call) VoidCost() float64 { return c.voidCost }

// Pickup returns the call's pickup action.
func (c *Call) Pickup() *Action { return c.pickup }

// Delivery returns the call's delivery action.
func (c *Call) Delivery() *Action { return c.delivery }

// String implements fmt.Stringer.
func (c *Call) String() string { return fmt.Sprintf("Call-%d", c.idx) }
