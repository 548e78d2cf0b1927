package memory

import (
	"context"
	"sort"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"
)

type MenuRepository struct {
	uow *UnitOfWork
}

func (r *MenuRepository) Add(_ context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		if _, ok := d.menus[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("menu", errDuplicateKey)
		}
		d.menus[aggregate.ID()] = menuToRecord(aggregate)
		return nil
	})
}

func (r *MenuRepository) Update(_ context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		if _, ok := d.menus[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("menu", aggregate.ID().String())
		}
		d.menus[aggregate.ID()] = menuToRecord(aggregate)
		return nil
	})
}

func (r *MenuRepository) Get(_ context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *menu.Menu
	err := r.uow.run(func(d *dataset) error {
		rec, ok := d.menus[id]
		if !ok {
			return errs.NewObjectNotFoundError("menu", id.String())
		}

		var err error
		found, err = rec.toDomain()
		return err
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// GetAllByIDs skips unknown and repeated ids.
func (r *MenuRepository) GetAllByIDs(_ context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	menus := make([]*menu.Menu, 0, len(ids))
	err := r.uow.run(func(d *dataset) error {
		for _, id := range kernel.DistinctUUIDs(ids) {
			rec, ok := d.menus[id]
			if !ok {
				continue
			}
			m, err := rec.toDomain()
			if err != nil {
				return err
			}
			menus = append(menus, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return menus, nil
}

// GetAll returns the menus sorted by name.
func (r *MenuRepository) GetAll(_ context.Context) ([]*menu.Menu, error) {
	var menus []*menu.Menu
	err := r.uow.run(func(d *dataset) error {
		menus = make([]*menu.Menu, 0, len(d.menus))
		for _, rec := range d.menus {
			m, err := rec.toDomain()
			if err != nil {
				return err
			}
			menus = append(menus, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(menus, func(i, j int) bool { return menus[i].Name() < menus[j].Name() })
	return menus, nil
}

type MenuGroupRepository struct {
	uow *UnitOfWork
}

func (r *MenuGroupRepository) Add(_ context.Context, aggregate *menu.MenuGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(func(d *dataset) error {
		if _, ok := d.menuGroups[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("menu group", errDuplicateKey)
		}
		d.menuGroups[aggregate.ID()] = menuGroupRecord{id: aggregate.ID(), name: aggregate.Name()}
		return nil
	})
}

func (r *MenuGroupRepository) Get(_ context.Context, id kernel.UUID) (*menu.MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *menu.MenuGroup
	err := r.uow.run(func(d *dataset) error {
		rec, ok := d.menuGroups[id]
		if !ok {
			return errs.NewObjectNotFoundError("menu group", id.String())
		}

		var err error
		found, err = rec.toDomain()
		return err
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (r *MenuGroupRepository) GetAll(_ context.Context) ([]*menu.MenuGroup, error) {
	var groups []*menu.MenuGroup
	err := r.uow.run(func(d *dataset) error {
		groups = make([]*menu.MenuGroup, 0, len(d.menuGroups))
		for _, rec := range d.menuGroups {
			g, err := rec.toDomain()
			if err != nil {
				return err
			}
			groups = append(groups, g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Name() < groups[j].Name() })
	return groups, nil
}
