package queries

import (
	"errors"
	"fmt"
	"time"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

// SalesReportLimit is the number of dishes in a best or worst sellers report.
const SalesReportLimit = 5

// SalesRanking selects which end of the monthly sales list is reported.
type SalesRanking int

const (
	// BestSellers are the dishes that brought in the most money.
	BestSellers SalesRanking = iota + 1
	// WorstSellers are the dishes that brought in the least money.
	WorstSellers
)

var (
	ErrGetDishSalesQueryIsNotConstructed = errors.New(
		"GetDishSalesQuery must be created via NewGetDishSalesQuery constructor",
	)
)

// GetDishSalesQuery asks for the best or worst sellers of the current calendar month.
type GetDishSalesQuery struct {
	now     time.Time
	ranking SalesRanking
	guard   guard.ConstructorGuard
}

// NewGetDishSalesQuery creates the query for the month containing now.
func NewGetDishSalesQuery(now time.Time, ranking SalesRanking) (GetDishSalesQuery, error) {
	var nowErr, rankingErr error
	if now.IsZero() {
		nowErr = errs.NewValueIsRequiredError("now")
	}
	if ranking != BestSellers && ranking != WorstSellers {
		rankingErr = errs.NewValueIsInvalidErrorWithCause("ranking", fmt.Errorf("%d is not a ranking", ranking))
	}
	if err := errors.Join(nowErr, rankingErr); err != nil {
		return GetDishSalesQuery{}, err
	}

	return GetDishSalesQuery{now: now, ranking: ranking, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishSalesQuery) Validate() error {
	return q.guard.Validate(ErrGetDishSalesQueryIsNotConstructed)
}

// Now returns the reference time.
func (q GetDishSalesQuery) Now() time.Time {
	return q.now
}

// Ranking returns the requested end of the list.
func (q GetDishSalesQuery) Ranking() SalesRanking {
	return q.ranking
}
