// Package menurepo persists menus and menu groups with GORM.
package menurepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuGroupDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

func (MenuGroupDTO) TableName() string {
	return "menu_groups"
}

type MenuDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	MenuGroupID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Displayed   bool            `gorm:"not null"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

func menuFromDomain(m *menu.Menu) MenuDTO {
	return MenuDTO{
		ID:          m.ID().Bytes(),
		Name:        m.Name(),
		Price:       m.Price().Decimal(),
		MenuGroupID: m.MenuGroupID().Bytes(),
		Displayed:   m.IsDisplayed(),
	}
}

func menuToDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenu(id, dto.Name, price, groupID, dto.Displayed)
}

func groupFromDomain(g *menu.MenuGroup) MenuGroupDTO {
	return MenuGroupDTO{
		ID:   g.ID().Bytes(),
		Name: g.Name(),
	}
}

func groupToDomain(dto MenuGroupDTO) (*menu.MenuGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuGroup(id, dto.Name)
}
