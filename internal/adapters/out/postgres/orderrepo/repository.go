package orderrepo

import (
	"context"
	"errors"

	"orderbot/internal/adapters/out/postgres/pgerr"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errCounterMissing means the schema was created without running Migrate.
var errCounterMissing = errors.New("order counter row is missing")

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextNumber bumps the counter row past the highest stored order number. The
// UPDATE takes a row lock, so concurrent transactions allocate one after another.
func (r *GormOrderRepository) NextNumber(ctx context.Context) (order.Number, error) {
	var next []int64
	err := r.db.WithContext(ctx).Raw(`
		UPDATE order_counters
		SET value = GREATEST(value, (SELECT COALESCE(MAX(number), 0) FROM orders)) + 1
		WHERE name = ?
		RETURNING value`, CounterName).Scan(&next).Error
	if err != nil {
		return 0, pgerr.Wrap("allocate order number", err)
	}
	if len(next) == 0 {
		return 0, errs.NewStoreUnavailableError("allocate order number", errCounterMissing)
	}
	return order.Number(next[0]), nil
}

// Add saves a new order. The customer must already exist.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	var customers int64
	if err := db.Table("customers").Where("phone = ?", dto.CustomerPhone).Count(&customers).Error; err != nil {
		return pgerr.Wrap("add order", err)
	}
	if customers == 0 {
		return errs.NewObjectNotFoundError("customer", dto.CustomerPhone)
	}

	return pgerr.Wrap("add order", db.Create(&dto).Error)
}

// Update saves the remark of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ?", dto.Number).
		Update("remark", dto.Remark)
	if result.Error != nil {
		return pgerr.Wrap("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.Number)
	}
	return nil
}

// Get retrieves an order by number.
func (r *GormOrderRepository) Get(ctx context.Context, number order.Number) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Take(&dto, "number = ?", int64(number)).Error; err != nil {
		return nil, pgerr.NotFound("get order", "order", number, err)
	}
	return toDomain(dto)
}

// AddLine inserts the line or adds its quantity to the existing one. The merged
// quantity is validated inside a savepoint so an oversized line leaves nothing behind.
func (r *GormOrderRepository) AddLine(ctx context.Context, line order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.requireRow(tx, "orders", "number", int64(line.Order()), "order"); err != nil {
			return err
		}
		if err := r.requireRow(tx, "dishes", "number", line.Dish(), "dish"); err != nil {
			return err
		}

		dto := LineDTO{
			OrderNumber: int64(line.Order()),
			DishNumber:  line.Dish(),
			Quantity:    line.Quantity(),
		}
		err := tx.Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "order_number"}, {Name: "dish_number"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity": gorm.Expr("order_lines.quantity + excluded.quantity"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "quantity"}}},
		).Create(&dto).Error
		if err != nil {
			return pgerr.Wrap("add order line", err)
		}
		return order.ValidateQuantity(dto.Quantity)
	})
	return pgerr.Wrap("add order line", err)
}

func (r *GormOrderRepository) requireRow(tx *gorm.DB, table, column string, id int64, param string) error {
	var n int64
	if err := tx.Table(table).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return pgerr.Wrap("add order line", err)
	}
	if n == 0 {
		return errs.NewObjectNotFoundError(param, id)
	}
	return nil
}

// DeleteLine removes the order's line for dish and reports whether one existed.
func (r *GormOrderRepository) DeleteLine(ctx context.Context, number order.Number, dish int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("order_number = ? AND dish_number = ?", int64(number), dish).
		Delete(&LineDTO{})
	if result.Error != nil {
		return false, pgerr.Wrap("delete order line", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Lines lists the order's lines joined with their dishes, in insertion order.
func (r *GormOrderRepository) Lines(ctx context.Context, number order.Number) ([]order.CartItem, error) {
	var rows []cartRow
	err := r.db.WithContext(ctx).Table("order_lines AS l").
		Select("d.number AS dish_number, d.name AS dish_name, d.price AS price, l.quantity AS quantity").
		Joins("JOIN dishes AS d ON d.number = l.dish_number").
		Where("l.order_number = ?", int64(number)).
		Order("l.id").
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("list order lines", err)
	}

	items := make([]order.CartItem, 0, len(rows))
	for _, row := range rows {
		item, itemErr := toCartItem(row)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}
	return items, nil
}

// Total sums price × quantity over the order's lines. ok is false without lines.
func (r *GormOrderRepository) Total(ctx context.Context, number order.Number) (decimal.Decimal, bool, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Table("order_lines AS l").
		Select("SUM(d.price * l.quantity)").
		Joins("JOIN dishes AS d ON d.number = l.dish_number").
		Where("l.order_number = ?", int64(number)).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, false, pgerr.Wrap("sum order total", err)
	}
	if !total.Valid {
		return decimal.Zero, false, nil
	}
	return total.Decimal, true, nil
}

// CountForCustomer returns how many orders the customer has ever opened.
func (r *GormOrderRepository) CountForCustomer(ctx context.Context, customer kernel.Phone) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("customer_phone = ?", customer.String()).Count(&n).Error
	if err != nil {
		return 0, pgerr.Wrap("count customer orders", err)
	}
	return int(n), nil
}
