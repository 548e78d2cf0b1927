package kernel

import (
	"strings"

	"kitchenpos/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("delivery address")

// Address is the destination of a delivery order.
type Address struct {
	value string
}

// NewAddress trims s and rejects blank input.
func NewAddress(s string) (Address, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Address{}, ErrAddressIsNotConstructed
	}
	return Address{value: trimmed}, nil
}

func (a Address) String() string {
	return a.value
}

// IsZero reports whether the address was never set.
func (a Address) IsZero() bool {
	return a.value == ""
}

func (a Address) Validate() error {
	if a.IsZero() {
		return ErrAddressIsNotConstructed
	}
	return nil
}
