package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	WAITING ──> ACCEPTED ──> SERVED ──────────────────────────────> COMPLETED
//	                            │                                      ^
//	                            └──> DELIVERING ──> DELIVERED ─────────┘
//	                                 (delivery orders only)
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Waiting
	Accepted
	Served
	Delivering
	Delivered
	// Completed is final.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		Served:     "SERVED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Waiting, Accepted, Served, Delivering, Delivered, Completed}
}

// ParseStatus maps a wire name such as "SERVED" to a Status.
//
// Parameters:
//   - s: upper-case status name as stored in the database and sent over HTTP
//
// Returns:
//   - Status: the matching status
//   - error: ValueIsInvalidError if s names no status; "UNKNOWN" is rejected too
//
// Example:
//
//	st, err := order.ParseStatus("DELIVERING")
//	if err != nil {
//	    return err
//	}
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if st.String() == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate rejects Unknown and values outside the enumeration.
//
// Valid statuses are:
//   - Waiting, Accepted, Served
//   - Delivering, Delivered (delivery orders only)
//   - Completed
//
// Returns:
//   - error: nil if the status is valid, ValueIsInvalidError otherwise
func (s Status) Validate() error {
	if s < Waiting || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Values outside the enumeration
// render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCompleted reports whether the order reached its final state.
func (s Status) IsCompleted() bool {
	return s == Completed
}

// Transition names a requested status change.
type Transition int

const (
	Accept Transition = iota + 1
	Serve
	StartDelivery
	CompleteDelivery
	Complete
)

func (t Transition) String() string {
	switch t {
	case Accept:
		return "accept"
	case Serve:
		return "serve"
	case StartDelivery:
		return "start delivery"
	case CompleteDelivery:
		return "complete delivery"
	case Complete:
		return "complete"
	default:
		return "unknown transition"
	}
}

type transitionRule struct {
	from   Status
	to     Status
	allows func(Type) bool
}

func anyType(Type) bool        { return true }
func deliveryOnly(t Type) bool { return t == Delivery }
func notDelivery(t Type) bool  { return t != Delivery }

// transitions is the single table of legal (status, transition, type) combinations.
var transitions = map[Transition][]transitionRule{
	Accept:           {{from: Waiting, to: Accepted, allows: anyType}},
	Serve:            {{from: Accepted, to: Served, allows: anyType}},
	StartDelivery:    {{from: Served, to: Delivering, allows: deliveryOnly}},
	CompleteDelivery: {{from: Delivering, to: Delivered, allows: deliveryOnly}},
	Complete: {
		{from: Served, to: Completed, allows: notDelivery},
		{from: Delivered, to: Completed, allows: deliveryOnly},
	},
}

// Next returns the status reached by applying t to an order of type orderType in status s.
// The receiver is not modified.
//
// Parameters:
//   - t: the requested transition
//   - orderType: type of the order, which decides the delivery branch
//
// Returns:
//   - Status: the status after the transition
//   - error: ValueIsInvalidError for an unknown transition, IllegalStateError when
//     the order type can never take t or s is not a valid source status
//
// Business Rules:
//   - Only delivery orders may start or complete a delivery
//   - Delivery orders complete from DELIVERED, all others from SERVED
//   - COMPLETED has no outgoing transitions
//
// Example:
//
//	next, err := order.Served.Next(order.StartDelivery, order.Delivery)
//	// next == order.Delivering, err == nil
//
//	_, err = order.Served.Next(order.StartDelivery, order.Takeout)
//	// errors.Is(err, errs.ErrIllegalState) == true
func (s Status) Next(t Transition, orderType Type) (Status, error) {
	rules, ok := transitions[t]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"transition",
			fmt.Errorf("%d is not a valid transition", t),
		)
	}

	typeAllowed := false
	for _, rule := range rules {
		if !rule.allows(orderType) {
			continue
		}
		typeAllowed = true
		if rule.from == s {
			return rule.to, nil
		}
	}

	if !typeAllowed {
		return Unknown, errs.NewIllegalStateErrorWithCause(
			"order type",
			fmt.Errorf("%s orders cannot %s", orderType, t),
		)
	}
	return Unknown, errs.NewIllegalStateErrorWithCause(
		"order status",
		fmt.Errorf("%s is not a valid status to %s", s, t),
	)
}
