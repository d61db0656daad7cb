package queries

import (
	"errors"
	"time"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

// WeekDays is the length of the income report.
const WeekDays = 7

var (
	ErrGetWeeklyIncomeQueryIsNotConstructed = errors.New(
		"GetWeeklyIncomeQuery must be created via NewGetWeeklyIncomeQuery constructor",
	)
)

// GetWeeklyIncomeQuery asks for the daily income of the last WeekDays days,
// today included.
type GetWeeklyIncomeQuery struct {
	now   time.Time
	guard guard.ConstructorGuard
}

// NewGetWeeklyIncomeQuery creates the query relative to now.
func NewGetWeeklyIncomeQuery(now time.Time) (GetWeeklyIncomeQuery, error) {
	if now.IsZero() {
		return GetWeeklyIncomeQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetWeeklyIncomeQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWeeklyIncomeQuery) Validate() error {
	return q.guard.Validate(ErrGetWeeklyIncomeQueryIsNotConstructed)
}

// Now returns the reference time.
func (q GetWeeklyIncomeQuery) Now() time.Time {
	return q.now
}
