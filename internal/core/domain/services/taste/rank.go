package taste

import (
	"sort"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
)

// FavoritesLimit is the size of every recommendation list.
const FavoritesLimit = 5

// Usage counts how often one customer ordered one dish at one price.
type Usage struct {
	Customer string
	Dish     string
	Price    kernel.Price
	// Lines is the number of historical order lines with this dish.
	Lines int
	// Orders is the customer's total number of orders.
	Orders int
}

// Rating is Lines ÷ Orders, the dish's frequency relative to the customer's orders.
func (u Usage) Rating() float64 {
	if u.Orders <= 0 {
		return 0
	}
	return float64(u.Lines) / float64(u.Orders)
}

// Rank sums ratings by (dish, price) across all usages and returns the limit
// best favorites, highest summed rating first. Ties are broken by name, then price.
func Rank(usages []Usage, limit int) []catalog.Favorite {
	type key struct {
		dish  string
		price string
	}
	type scored struct {
		fav   catalog.Favorite
		score float64
	}

	byKey := make(map[key]*scored)
	for _, u := range usages {
		k := key{dish: u.Dish, price: u.Price.String()}
		s, ok := byKey[k]
		if !ok {
			s = &scored{fav: catalog.Favorite{Name: u.Dish, Price: u.Price}}
			byKey[k] = s
		}
		s.score += u.Rating()
	}

	all := make([]*scored, 0, len(byKey))
	for _, s := range byKey {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		if all[i].fav.Name != all[j].fav.Name {
			return all[i].fav.Name < all[j].fav.Name
		}
		return all[i].fav.Price.Amount().LessThan(all[j].fav.Price.Amount())
	})

	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	out := make([]catalog.Favorite, len(all))
	for i, s := range all {
		out[i] = s.fav
	}
	return out
}
