package orderrepo

import (
	"context"

	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormActiveOrderReader builds the order board with a single aggregate query
// instead of loading every order aggregate.
type GormActiveOrderReader struct {
	db *gorm.DB
}

func NewGormActiveOrderReader(db *gorm.DB) *GormActiveOrderReader {
	return &GormActiveOrderReader{db: db}
}

// ReadActiveOrders returns the orders that are not completed, oldest first.
func (r *GormActiveOrderReader) ReadActiveOrders(ctx context.Context) ([]queries.ActiveOrderResponse, error) {
	board := make([]queries.ActiveOrderResponse, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.type,
			o.status,
			o.table_id,
			o.ordered_at,
			COUNT(li.seq) AS item_count,
			COALESCE(SUM(li.price * li.quantity), 0) AS total_amount
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
		WHERE o.status <> ?
		GROUP BY o.id
		ORDER BY o.ordered_at, o.id
	`, int(order.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row queries.ActiveOrderResponse
		var id uuid.UUID
		var tableID uuid.NullUUID
		var orderType, status int
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&orderType,
			&status,
			&tableID,
			&row.OrderedAt,
			&row.ItemCount,
			&total,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID

		if tableID.Valid {
			tID, tableErr := kernel.UUIDFromBytes(tableID.UUID[:])
			if tableErr != nil {
				return nil, tableErr
			}
			row.TableID = &tID
		}

		row.Type = order.Type(orderType)
		row.Status = order.Status(status)
		row.TotalAmount = total
		board = append(board, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
