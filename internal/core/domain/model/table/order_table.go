package table

import (
	"errors"
	"fmt"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrNameIsRequired             = errs.NewValueIsRequiredError("table name")
	ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable constructor")
)

// OrderTable is a table orders can be placed at.
type OrderTable struct {
	id             kernel.UUID
	name           string
	numberOfGuests int
	empty          bool
	tableGroupID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrderTable creates an empty table with no guests.
//
// Parameters:
//   - id: identifier chosen by the caller
//   - name: display name; surrounding whitespace is trimmed and blank names are rejected
//
// Returns:
//   - *OrderTable: an empty, ungrouped table
//   - error: ErrNameIsRequired or the id validation error
func NewOrderTable(id kernel.UUID, name string) (*OrderTable, error) {
	return RestoreOrderTable(id, name, 0, true, nil)
}

// RestoreOrderTable rebuilds a persisted table.
func RestoreOrderTable(
	id kernel.UUID,
	name string,
	numberOfGuests int,
	empty bool,
	tableGroupID *kernel.UUID,
) (*OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameIsRequired
	}

	if numberOfGuests < 0 {
		return nil, errs.NewValueIsOutOfRangeError("number of guests", numberOfGuests, 0, "unbounded")
	}

	t := &OrderTable{
		id:             id,
		name:           trimmed,
		numberOfGuests: numberOfGuests,
		empty:          empty,
		guard:          guard.NewConstructorGuard(),
	}
	if tableGroupID != nil {
		groupID := *tableGroupID
		t.tableGroupID = &groupID
	}

	return t, nil
}

func (t *OrderTable) Validate() error {
	if t == nil {
		return ErrOrderTableIsNotConstructed
	}
	return t.guard.Validate(ErrOrderTableIsNotConstructed)
}

func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

func (t *OrderTable) Name() string {
	return t.name
}

func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

func (t *OrderTable) IsEmpty() bool {
	return t.empty
}

// TableGroupID is nil for ungrouped tables.
func (t *OrderTable) TableGroupID() *kernel.UUID {
	return t.tableGroupID
}

func (t *OrderTable) IsGrouped() bool {
	return t.tableGroupID != nil
}

// Sit marks the table as occupied.
func (t *OrderTable) Sit() {
	t.empty = false
}

// Clear empties the table and resets the guest count. Grouped tables are cleared
// by deleting their group first.
func (t *OrderTable) Clear() error {
	if t.IsGrouped() {
		return errs.NewIllegalStateErrorWithCause(
			"order table",
			fmt.Errorf("table %s belongs to group %s", t.id, t.tableGroupID),
		)
	}
	t.Vacate()
	return nil
}

// Vacate empties the table once its last order is completed, regardless of grouping.
func (t *OrderTable) Vacate() {
	t.empty = true
	t.numberOfGuests = 0
}

// ChangeNumberOfGuests updates the guest count of an occupied table.
//
// Returns:
//   - error: ValueIsOutOfRangeError for a negative count, IllegalStateError when
//     the table is empty
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsOutOfRangeError("number of guests", numberOfGuests, 0, "unbounded")
	}
	if t.empty {
		return errs.NewIllegalStateErrorWithCause(
			"order table",
			fmt.Errorf("table %s is empty", t.id),
		)
	}
	t.numberOfGuests = numberOfGuests
	return nil
}

// JoinGroup occupies an empty, ungrouped table on behalf of groupID.
func (t *OrderTable) JoinGroup(groupID kernel.UUID) error {
	if err := groupID.Validate(); err != nil {
		return err
	}
	if !t.empty {
		return errs.NewValueIsInvalidErrorWithCause(
			"order table",
			fmt.Errorf("table %s is not empty", t.id),
		)
	}
	if t.IsGrouped() {
		return errs.NewValueIsInvalidErrorWithCause(
			"order table",
			fmt.Errorf("table %s already belongs to group %s", t.id, t.tableGroupID),
		)
	}

	t.tableGroupID = &groupID
	t.empty = false
	return nil
}

// LeaveGroup clears the group reference. The empty flag is left as it is.
func (t *OrderTable) LeaveGroup() {
	t.tableGroupID = nil
}
