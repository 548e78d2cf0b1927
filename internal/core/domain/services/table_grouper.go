package services

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
)

// TableGrouper merges tables into a group and splits the group again.
//
// Grouping needs at least two requested tables, all of them found, empty and
// ungrouped. Every member is then occupied and points at the new group.
// Ungrouping is refused while any member table has an order that is not completed;
// it only clears the group reference of each member.
type TableGrouper struct{}

func NewTableGrouper() TableGrouper {
	return TableGrouper{}
}

// Group validates the tables found for requestedIDs and assigns them to a new group.
// Nothing is changed when an error is returned.
func (g TableGrouper) Group(
	groupID kernel.UUID,
	requestedIDs []kernel.UUID,
	tables []*table.OrderTable,
	createdAt time.Time,
) (*table.TableGroup, error) {
	if len(requestedIDs) < table.MinGroupSize {
		return nil, errs.NewValueIsOutOfRangeError("table group size", len(requestedIDs), table.MinGroupSize, "unbounded")
	}

	if len(tables) != len(requestedIDs) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order tables",
			fmt.Errorf("%d tables requested, %d distinct tables found", len(requestedIDs), len(tables)),
		)
	}

	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if !t.IsEmpty() || t.IsGrouped() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"order tables",
				fmt.Errorf("table %s must be empty and ungrouped", t.ID()),
			)
		}
	}

	group, err := table.NewTableGroup(groupID, requestedIDs, createdAt)
	if err != nil {
		return nil, err
	}

	for _, t := range tables {
		if err = t.JoinGroup(groupID); err != nil {
			return nil, err
		}
	}

	return group, nil
}

// Ungroup releases every member table. hasOpenOrders reports whether any member
// still has an order that is not completed.
func (g TableGrouper) Ungroup(tables []*table.OrderTable, hasOpenOrders bool) error {
	if hasOpenOrders {
		return errs.NewValueIsInvalidErrorWithCause(
			"table group",
			errors.New("member tables still have orders that are not completed"),
		)
	}

	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, t := range tables {
		t.LeaveGroup()
	}
	return nil
}
