package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menus.
type MenuRepository interface {
	Add(ctx context.Context, aggregate *menu.Menu) error
	Update(ctx context.Context, aggregate *menu.Menu) error
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAllByIDs returns the menus found for ids. Unknown ids are skipped, so the
	// result may be shorter than ids.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	GetAll(ctx context.Context) ([]*menu.Menu, error)
}

// MenuGroupRepository defines the persistence contract for menu groups.
type MenuGroupRepository interface {
	Add(ctx context.Context, aggregate *menu.MenuGroup) error
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error)
	GetAll(ctx context.Context) ([]*menu.MenuGroup, error)
}
