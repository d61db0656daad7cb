package memory

import (
	"context"
	"slices"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderRepository stores orders and their lines.
type OrderRepository struct {
	session
}

// NewOrderRepository returns a repository writing outside of any transaction.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{session: session{store: store}}
}

func (r *OrderRepository) NextNumber(_ context.Context) (order.Number, error) {
	var next int64
	err := r.write(func() (func(), error) {
		prev := r.store.counter
		highest := prev
		for n := range r.store.orders {
			highest = max(highest, int64(n))
		}
		next = highest + 1
		r.store.counter = next
		return func() { r.store.counter = prev }, nil
	})
	return order.Number(next), err
}

func (r *OrderRepository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return r.write(func() (func(), error) {
		if _, ok := r.store.orders[o.Number()]; ok {
			return nil, errs.NewValueIsInvalidError("order number")
		}
		if _, ok := r.store.customers[o.Customer().String()]; !ok {
			return nil, errs.NewObjectNotFoundError("customer", o.Customer().String())
		}

		remark, _ := o.Remark()
		r.store.orders[o.Number()] = &orderRow{
			number:   o.Number(),
			shipping: o.IsShipping(),
			customer: o.Customer(),
			agent:    o.Agent(),
			remark:   remark,
			placedAt: o.PlacedAt(),
		}
		return func() { delete(r.store.orders, o.Number()) }, nil
	})
}

func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return r.write(func() (func(), error) {
		row, ok := r.store.orders[o.Number()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", o.Number())
		}
		prev := row.remark
		row.remark, _ = o.Remark()
		return func() { row.remark = prev }, nil
	})
}

func (r *OrderRepository) Get(_ context.Context, number order.Number) (*order.Order, error) {
	var (
		row orderRow
		ok  bool
	)
	r.read(func() {
		var p *orderRow
		p, ok = r.store.orders[number]
		if ok {
			row = *p
		}
	})
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", number)
	}

	o, err := order.NewOrder(row.number, row.shipping, row.customer, row.agent, row.placedAt)
	if err != nil {
		return nil, err
	}
	if row.remark != "" {
		if err = o.SetRemark(row.remark); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (r *OrderRepository) AddLine(_ context.Context, line order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	return r.write(func() (func(), error) {
		if _, ok := r.store.orders[line.Order()]; !ok {
			return nil, errs.NewObjectNotFoundError("order", line.Order())
		}
		if _, ok := r.store.dishes[line.Dish()]; !ok {
			return nil, errs.NewObjectNotFoundError("dish", line.Dish())
		}

		if i := r.store.findLine(line.Order(), line.Dish()); i >= 0 {
			existing := r.store.lines[i]
			merged := existing.quantity + line.Quantity()
			if err := order.ValidateQuantity(merged); err != nil {
				return nil, err
			}
			prev := existing.quantity
			existing.quantity = merged
			return func() { existing.quantity = prev }, nil
		}

		r.store.lines = append(r.store.lines, &lineRow{
			order:    line.Order(),
			dish:     line.Dish(),
			quantity: line.Quantity(),
		})
		return func() { r.store.lines = r.store.lines[:len(r.store.lines)-1] }, nil
	})
}

func (r *OrderRepository) DeleteLine(_ context.Context, number order.Number, dish int64) (bool, error) {
	removed := false
	err := r.write(func() (func(), error) {
		i := r.store.findLine(number, dish)
		if i < 0 {
			return nil, nil
		}
		row := r.store.lines[i]
		r.store.lines = slices.Delete(r.store.lines, i, i+1)
		removed = true
		return func() { r.store.lines = slices.Insert(r.store.lines, i, row) }, nil
	})
	return removed, err
}

func (r *OrderRepository) Lines(_ context.Context, number order.Number) ([]order.CartItem, error) {
	items := make([]order.CartItem, 0)
	r.read(func() {
		for _, l := range r.store.lines {
			if l.order != number {
				continue
			}
			d, ok := r.store.dishes[l.dish]
			if !ok {
				continue
			}
			items = append(items, order.CartItem{
				DishNumber: d.Number(),
				DishName:   d.Name(),
				Price:      d.Price(),
				Quantity:   l.quantity,
			})
		}
	})
	return items, nil
}

func (r *OrderRepository) Total(ctx context.Context, number order.Number) (decimal.Decimal, bool, error) {
	items, err := r.Lines(ctx, number)
	if err != nil {
		return decimal.Zero, false, err
	}
	total, ok := order.Total(items)
	return total, ok, nil
}

func (r *OrderRepository) CountForCustomer(_ context.Context, customer kernel.Phone) (int, error) {
	count := 0
	r.read(func() {
		for _, o := range r.store.orders {
			if o.customer.IsEqual(customer) {
				count++
			}
		}
	})
	return count, nil
}
