package postgres

import (
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/tablerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&tablerepo.TableGroupDTO{},
		&tablerepo.OrderTableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineItemDTO{},
	)
}
