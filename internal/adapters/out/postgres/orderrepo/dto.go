// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// It covers the orders table, their lines and the counter row used to allocate order numbers.
package orderrepo

import (
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CounterName is the order_counters row that allocates order numbers.
const CounterName = "orders"

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	Number        int64     `gorm:"primaryKey;autoIncrement:false"`
	Shipping      bool      `gorm:"not null"`
	CustomerPhone string    `gorm:"type:varchar(13);not null;index"`
	AgentPhone    string    `gorm:"type:varchar(13);not null"`
	Remark        *string   `gorm:"type:text"`
	PlacedAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one dish of an order. ID keeps insertion order.
type LineDTO struct {
	ID          int64 `gorm:"primaryKey"`
	OrderNumber int64 `gorm:"not null;uniqueIndex:idx_order_lines_order_dish"`
	DishNumber  int64 `gorm:"not null;uniqueIndex:idx_order_lines_order_dish"`
	Quantity    int   `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// CounterDTO is a named monotonic counter.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "order_counters"
}

// cartRow is an order line joined with its dish.
type cartRow struct {
	DishNumber int64
	DishName   string
	Price      decimal.Decimal
	Quantity   int
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		Number:        int64(o.Number()),
		Shipping:      o.IsShipping(),
		CustomerPhone: o.Customer().String(),
		AgentPhone:    o.Agent().String(),
		PlacedAt:      o.PlacedAt().UTC(),
	}
	if remark, ok := o.Remark(); ok {
		dto.Remark = &remark
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	customer, err := kernel.NewPhone(dto.CustomerPhone)
	if err != nil {
		return nil, err
	}
	agent, err := kernel.NewPhone(dto.AgentPhone)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(order.Number(dto.Number), dto.Shipping, customer, agent, dto.PlacedAt)
	if err != nil {
		return nil, err
	}
	if dto.Remark != nil {
		if err = o.SetRemark(*dto.Remark); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func toCartItem(row cartRow) (order.CartItem, error) {
	price, err := kernel.NewPrice(row.Price)
	if err != nil {
		return order.CartItem{}, err
	}
	return order.CartItem{
		DishNumber: row.DishNumber,
		DishName:   row.DishName,
		Price:      price,
		Quantity:   row.Quantity,
	}, nil
}
