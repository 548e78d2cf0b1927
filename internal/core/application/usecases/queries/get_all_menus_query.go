package queries

import (
	"context"
	"errors"
	"sort"

	"kitchenpos/internal/pkg/guard"
)

var (
	ErrGetAllMenusQueryIsNotConstructed = errors.New(
		"GetAllMenusQuery must be created via NewGetAllMenusQuery constructor",
	)
	ErrGetAllMenuGroupsQueryIsNotConstructed = errors.New(
		"GetAllMenuGroupsQuery must be created via NewGetAllMenuGroupsQuery constructor",
	)
)

// GetAllMenusQuery lists every menu, hidden ones included.
type GetAllMenusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllMenusQuery() GetAllMenusQuery {
	return GetAllMenusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenusQueryIsNotConstructed)
}

type GetAllMenusQueryHandler struct {
	menus MenuLister
}

func NewGetAllMenusQueryHandler(menus MenuLister) GetAllMenusQueryHandler {
	return GetAllMenusQueryHandler{menus: menus}
}

// Handle returns the menus sorted by name.
func (h GetAllMenusQueryHandler) Handle(ctx context.Context, query GetAllMenusQuery) ([]MenuResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus, err := h.menus.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		result = append(result, NewMenuResponse(m))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// GetAllMenuGroupsQuery lists every menu group.
type GetAllMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllMenuGroupsQuery() GetAllMenuGroupsQuery {
	return GetAllMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenuGroupsQueryIsNotConstructed)
}

type GetAllMenuGroupsQueryHandler struct {
	groups MenuGroupLister
}

func NewGetAllMenuGroupsQueryHandler(groups MenuGroupLister) GetAllMenuGroupsQueryHandler {
	return GetAllMenuGroupsQueryHandler{groups: groups}
}

func (h GetAllMenuGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenuGroupsQuery,
) ([]MenuGroupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups, err := h.groups.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]MenuGroupResponse, 0, len(groups))
	for _, g := range groups {
		result = append(result, NewMenuGroupResponse(g))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}
