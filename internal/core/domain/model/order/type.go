package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Type decides which fields an order needs and which transitions it may take.
type Type int

const (
	// UnknownType is the zero value and is never valid.
	UnknownType Type = iota
	DineIn
	Takeout
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		DineIn:      "DINE_IN",
		Takeout:     "TAKEOUT",
		Delivery:    "DELIVERY",
	}
}

// Types lists every valid order type.
func Types() []Type {
	return []Type{DineIn, Takeout, Delivery}
}

// ParseType maps the wire name ("DINE_IN", "TAKEOUT", "DELIVERY") to a Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if t.String() == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"order type",
		fmt.Errorf("%q is not a valid order type", s),
	)
}

// Validate rejects UnknownType and values outside the enumeration.
func (t Type) Validate() error {
	if t == DineIn || t == Takeout || t == Delivery {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"order type",
		fmt.Errorf("%d is not a valid order type", t),
	)
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
