// Package catalogrepo persists the menu. Tags are stored by name in a text[] column.
package catalogrepo

import (
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// DishDTO represents the database structure for persisting dishes.
type DishDTO struct {
	Number int64           `gorm:"primaryKey;autoIncrement:false"`
	Name   string          `gorm:"not null;uniqueIndex"`
	Type   string          `gorm:"column:dish_type;not null;index"`
	Price  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Tags   pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
}

// TableName specifies the database table name for dishes.
func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *catalog.Dish) DishDTO {
	tags := make(pq.StringArray, 0)
	for _, t := range d.Tags().List() {
		tags = append(tags, t.String())
	}

	return DishDTO{
		Number: d.Number(),
		Name:   d.Name(),
		Type:   d.Type(),
		Price:  d.Price().Amount(),
		Tags:   tags,
	}
}

// toDomain converts a database DTO to a dish.
func toDomain(dto DishDTO) (*catalog.Dish, error) {
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	tags, err := catalog.ParseTags(dto.Tags)
	if err != nil {
		return nil, err
	}
	return catalog.NewDish(dto.Number, dto.Name, dto.Type, price, tags)
}
