package tablerepo

import (
	"context"
	"errors"

	"kitchenpos/internal/adapters/out/postgres/pgutil"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormOrderTableRepository implements OrderTableRepository using GORM.
type GormOrderTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormOrderTableRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderTableRepository {
	return &GormOrderTableRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderTableRepository) Add(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := tableFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Translate(err, "order table")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so leaving a group clears table_group_id.
func (r *GormOrderTableRepository) Update(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := tableFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderTableDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":             dto.Name,
			"number_of_guests": dto.NumberOfGuests,
			"empty":            dto.Empty,
			"table_group_id":   dto.TableGroupID,
		})
	if result.Error != nil {
		return pgutil.Translate(result.Error, "table group")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order table", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order table", id.String())
		}
		return nil, err
	}

	return tableToDomain(dto)
}

// GetAllByIDs skips unknown ids, so callers compare lengths to detect them.
func (r *GormOrderTableRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	if len(ids) == 0 {
		return []*table.OrderTable{}, nil
	}

	var dtos []OrderTableDTO
	if err := r.db.WithContext(ctx).Where("id = ANY(?)", pgutil.UUIDArray(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return tablesToDomain(dtos)
}

func (r *GormOrderTableRepository) GetAllByTableGroup(
	ctx context.Context,
	groupID kernel.UUID,
) ([]*table.OrderTable, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderTableDTO
	if err := r.db.WithContext(ctx).Where("table_group_id = ?", groupID.Bytes()).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return tablesToDomain(dtos)
}

func (r *GormOrderTableRepository) GetAll(ctx context.Context) ([]*table.OrderTable, error) {
	var dtos []OrderTableDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return tablesToDomain(dtos)
}

func tablesToDomain(dtos []OrderTableDTO) ([]*table.OrderTable, error) {
	tables := make([]*table.OrderTable, 0, len(dtos))
	for _, dto := range dtos {
		t, err := tableToDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// GormTableGroupRepository implements TableGroupRepository using GORM.
type GormTableGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormTableGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormTableGroupRepository {
	return &GormTableGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the group row only. Members reference it through table_group_id,
// so the row must exist before the tables are updated.
func (r *GormTableGroupRepository) Add(ctx context.Context, aggregate *table.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := TableGroupDTO{
		ID:        aggregate.ID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgutil.Translate(err, "table group")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads the group with the ids of its member tables.
func (r *GormTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableGroupDTO
	if err := r.db.WithContext(ctx).Preload("Tables").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table group", id.String())
		}
		return nil, err
	}

	return groupToDomain(dto)
}

func (r *GormTableGroupRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TableGroupDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table group", id.String())
	}

	return nil
}
