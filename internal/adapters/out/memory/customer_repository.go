package memory

import (
	"context"

	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

// CustomerRepository stores customers by phone.
type CustomerRepository struct {
	session
}

// NewCustomerRepository returns a repository writing outside of any transaction.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{session: session{store: store}}
}

func (r *CustomerRepository) Upsert(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	key := c.Phone().String()
	return r.write(func() (func(), error) {
		prev, existed := r.store.customers[key]
		r.store.customers[key] = c.Name()
		return func() {
			if existed {
				r.store.customers[key] = prev
			} else {
				delete(r.store.customers, key)
			}
		}, nil
	})
}

func (r *CustomerRepository) Get(_ context.Context, phone kernel.Phone) (*customer.Customer, error) {
	var (
		name string
		ok   bool
	)
	r.read(func() {
		name, ok = r.store.customers[phone.String()]
	})
	if !ok {
		return nil, errs.NewObjectNotFoundError("phone", phone.String())
	}
	return customer.NewCustomer(phone, name)
}
