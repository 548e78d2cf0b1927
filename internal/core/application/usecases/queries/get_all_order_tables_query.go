package queries

import (
	"context"
	"errors"
	"sort"

	"kitchenpos/internal/pkg/guard"
)

var (
	ErrGetAllOrderTablesQueryIsNotConstructed = errors.New(
		"GetAllOrderTablesQuery must be created via NewGetAllOrderTablesQuery constructor",
	)
)

// GetAllOrderTablesQuery lists every table with its occupancy and group.
type GetAllOrderTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrderTablesQuery() GetAllOrderTablesQuery {
	return GetAllOrderTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrderTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrderTablesQueryIsNotConstructed)
}

type GetAllOrderTablesQueryHandler struct {
	tables OrderTableLister
}

func NewGetAllOrderTablesQueryHandler(tables OrderTableLister) GetAllOrderTablesQueryHandler {
	return GetAllOrderTablesQueryHandler{tables: tables}
}

// Handle returns the tables sorted by name.
func (h GetAllOrderTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrderTablesQuery,
) ([]OrderTableResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables, err := h.tables.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]OrderTableResponse, 0, len(tables))
	for _, t := range tables {
		result = append(result, NewOrderTableResponse(t))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}
