package menurepo

import (
	"context"
	"errors"

	"kitchenpos/internal/adapters/out/postgres/pgutil"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := menuFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Translate(err, "menu")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := menuFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MenuDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":      dto.Name,
			"price":     dto.Price,
			"displayed": dto.Displayed,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return menuToDomain(dto)
}

// GetAllByIDs skips unknown ids, so callers compare lengths to detect them.
func (r *GormMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	if len(ids) == 0 {
		return []*menu.Menu{}, nil
	}

	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Where("id = ANY(?)", pgutil.UUIDArray(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return menusToDomain(dtos)
}

func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return menusToDomain(dtos)
}

func menusToDomain(dtos []MenuDTO) ([]*menu.Menu, error) {
	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := menuToDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, nil
}

// GormMenuGroupRepository implements MenuGroupRepository using GORM.
type GormMenuGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMenuGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuGroupRepository {
	return &GormMenuGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMenuGroupRepository) Add(ctx context.Context, aggregate *menu.MenuGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := groupFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Translate(err, "menu group")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu group", id.String())
		}
		return nil, err
	}

	return groupToDomain(dto)
}

func (r *GormMenuGroupRepository) GetAll(ctx context.Context) ([]*menu.MenuGroup, error) {
	var dtos []MenuGroupDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	groups := make([]*menu.MenuGroup, 0, len(dtos))
	for _, dto := range dtos {
		g, err := groupToDomain(dto)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
