// Package memory provides an in-process implementation of every persistence port.
//
// It backs the STORE=memory mode and the conversation tests. Transactions are
// serialized: Begin takes a store-wide lock held until Commit or Rollback, and
// every write made inside a transaction records an undo step so Rollback restores
// the previous state. Reads outside a transaction see committed and in-flight
// writes alike, which is enough for the read-committed guarantees the queries need.
package memory

import (
	"sync"
	"time"

	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
)

type orderRow struct {
	number   order.Number
	shipping bool
	customer kernel.Phone
	agent    kernel.Phone
	remark   string
	placedAt time.Time
}

type lineRow struct {
	order    order.Number
	dish     int64
	quantity int
}

// Store holds all data of the in-memory backend.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	customers map[string]string
	orders    map[order.Number]*orderRow
	lines     []*lineRow
	dishes    map[int64]*catalog.Dish
	agents    map[string]*agent.Agent
	counter   int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		customers: make(map[string]string),
		orders:    make(map[order.Number]*orderRow),
		dishes:    make(map[int64]*catalog.Dish),
		agents:    make(map[string]*agent.Agent),
	}
}

// session binds repositories to a store and, optionally, to a running transaction.
type session struct {
	store *Store
	uow   *UnitOfWork
}

// write runs fn under the data lock and journals its undo step when a
// transaction is active.
func (s session) write(fn func() (undo func(), err error)) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	undo, err := fn()
	if err != nil {
		return err
	}
	if undo != nil && s.uow != nil && s.uow.active {
		s.uow.journal = append(s.uow.journal, undo)
	}
	return nil
}

func (s session) read(fn func()) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	fn()
}

func (s *Store) findLine(number order.Number, dish int64) int {
	for i, l := range s.lines {
		if l.order == number && l.dish == dish {
			return i
		}
	}
	return -1
}
