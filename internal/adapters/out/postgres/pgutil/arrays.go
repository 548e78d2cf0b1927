package pgutil

import (
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// UUIDArray encodes ids as a PostgreSQL array for "= ANY(?)" filters.
func UUIDArray(ids []kernel.UUID) pq.StringArray {
	values := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	return values
}
