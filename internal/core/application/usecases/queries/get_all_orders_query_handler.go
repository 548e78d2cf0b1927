package queries

import (
	"context"
	"sort"
)

type GetAllOrdersQueryHandler struct {
	orders OrderLister
}

func NewGetAllOrdersQueryHandler(orders OrderLister) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns every order, oldest first.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, NewOrderResponse(o))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].OrderedAt.Before(result[j].OrderedAt)
	})

	return result, nil
}
