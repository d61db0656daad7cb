package memory

import (
	"context"
	"fmt"
	"sort"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/pkg/errs"
)

// CatalogRepository stores the menu.
type CatalogRepository struct {
	session
}

// NewCatalogRepository returns a repository writing outside of any transaction.
func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{session: session{store: store}}
}

func (r *CatalogRepository) Save(_ context.Context, d *catalog.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}

	return r.write(func() (func(), error) {
		for n, other := range r.store.dishes {
			if n != d.Number() && other.Name() == d.Name() {
				return nil, errs.NewValueIsInvalidErrorWithCause("name",
					fmt.Errorf("%q is already used by dish %d", d.Name(), n))
			}
		}

		prev, existed := r.store.dishes[d.Number()]
		r.store.dishes[d.Number()] = d
		return func() {
			if existed {
				r.store.dishes[d.Number()] = prev
			} else {
				delete(r.store.dishes, d.Number())
			}
		}, nil
	})
}

func (r *CatalogRepository) ListByType(_ context.Context, dishType string) ([]*catalog.Dish, error) {
	dishes := make([]*catalog.Dish, 0)
	r.read(func() {
		for _, d := range r.store.dishes {
			if d.Type() == dishType {
				dishes = append(dishes, d)
			}
		}
	})
	sort.Slice(dishes, func(i, j int) bool { return dishes[i].Number() < dishes[j].Number() })
	return dishes, nil
}

func (r *CatalogRepository) GetByName(_ context.Context, name string) (*catalog.Dish, error) {
	var found *catalog.Dish
	r.read(func() {
		for _, d := range r.store.dishes {
			if d.Name() == name {
				found = d
				return
			}
		}
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("dish", name)
	}
	return found, nil
}
