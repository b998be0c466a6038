// Package pdp - core enums, keys, and sentinel errors shared by the
// model, the state tree, and the vehicle.
package pdp

import "errors"

// Sentinel errors for model construction and tree protocol misuse.
var (
	// ErrBadRole indicates a role outside {Pickup, Delivery}.
	ErrBadRole = errors.New("pdp: role must be Pickup or Delivery")

	// ErrTimeWindow indicates earliest > latest on an action window.
	ErrTimeWindow = errors.New("pdp: earliest time exceeds latest time")

	// ErrCallShape indicates a call built from nil, role-mismatched, or
	// already-linked actions, or with a negative size.
	ErrCallShape = errors.New("pdp: call requires an unlinked pickup and an unlinked delivery and a non-negative size")

	// ErrUnlinkedAction indicates call-dependent access on an action that
	// has not been linked to a Call yet.
	ErrUnlinkedAction = errors.New("pdp: action is not linked to a call")

	// ErrUnknownAction indicates selecting an action that is not a
	// registered branch of the state. This is caller misuse, not an
	// expected infeasibility.
	ErrUnknownAction = errors.New("pdp: action is not a registered branch")

	// ErrNilState indicates a Vehicle constructed without an initial state.
	ErrNilState = errors.New("pdp: initial state must be non-nil")
)

// Role is the tagged discriminant of an Action: one leg of a call.
// The numeric values double as the column index into service matrices.
type Role uint8

const (
	// Pickup collects a call at its origin node; load delta is +size.
	Pickup Role = iota
	// Delivery drops a call at its destination node; load delta is -size.
	Delivery
)

// Valid reports whether r is one of the two defined roles.
func (r Role) Valid() bool { return r == Pickup || r == Delivery }

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case Pickup:
		return "Pickup"
	case Delivery:
		return "Delivery"
	default:
		return "Role(?)"
	}
}

// MarshalText implements encoding.TextMarshaler: roles serialize as
// "pickup" / "delivery" instead of raw numbers.
func (r Role) MarshalText() ([]byte, error) {
	switch r {
	case Pickup:
		return []byte("pickup"), nil
	case Delivery:
		return []byte("delivery"), nil
	default:
		return nil, ErrBadRole
	}
}

// ActionKey identifies an action by (call index, role). Two actions are
// equal iff their keys are equal; keys are comparable and map-safe.
type ActionKey struct {
	Call int
	Role Role
}
