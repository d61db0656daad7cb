package memory

import (
	"context"
	"errors"

	"orderbot/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback outside of a transaction.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a serialized transaction over the Store.
type UnitOfWork struct {
	store   *Store
	active  bool
	journal []func()
}

// Begin waits for exclusive transactional access to the store. Calling Begin
// twice is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.txMu.Lock()
	u.active = true
	u.journal = u.journal[:0]
	return nil
}

// Commit keeps every write and releases the store.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}

	u.journal = nil
	u.active = false
	u.store.txMu.Unlock()
	return nil
}

// Rollback undoes every write of the transaction in reverse order.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}

	u.store.mu.Lock()
	for i := len(u.journal) - 1; i >= 0; i-- {
		u.journal[i]()
	}
	u.store.mu.Unlock()

	u.journal = nil
	u.active = false
	u.store.txMu.Unlock()
	return nil
}

func (u *UnitOfWork) session() session {
	return session{store: u.store, uow: u}
}

// CustomerRepository returns the customer repository bound to this unit of work.
func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{session: u.session()}
}

// OrderRepository returns the order repository bound to this unit of work.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{session: u.session()}
}

// CatalogRepository returns the catalog repository bound to this unit of work.
func (u *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return &CatalogRepository{session: u.session()}
}

// AgentRepository returns the agent repository bound to this unit of work.
func (u *UnitOfWork) AgentRepository() ports.AgentRepository {
	return &AgentRepository{session: u.session()}
}
