package queries

import (
	"context"
)

type GetActiveOrdersQueryHandler struct {
	reader ActiveOrderReader
}

func NewGetActiveOrdersQueryHandler(reader ActiveOrderReader) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{reader: reader}
}

func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]ActiveOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board, err := h.reader.ReadActiveOrders(ctx)
	if err != nil {
		return nil, err
	}
	if board == nil {
		board = make([]ActiveOrderResponse, 0)
	}

	return board, nil
}
