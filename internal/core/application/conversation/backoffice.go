package conversation

import (
	"context"
	"fmt"
	"strings"

	"orderbot/internal/core/application/usecases/queries"
)

func (m *Machine) openBackOffice(s *Session) []Reply {
	s.Reset()
	s.BackOffice = true
	return []Reply{textWithKeyboard("Hey, which report would you like to see?", backOfficeKeyboard())}
}

func (m *Machine) weeklyIncome(ctx context.Context, s *Session) ([]Reply, error) {
	if !s.BackOffice {
		return m.unknown(s), nil
	}

	query, err := queries.NewGetWeeklyIncomeQuery(m.now())
	if err != nil {
		return nil, err
	}
	series, err := m.h.WeeklyIncome.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	c := Chart{Title: "Income from the last week", XLabel: "day", YLabel: "daily income ₪"}
	for _, day := range series {
		c.Labels = append(c.Labels, day.Day.Format("02/01"))
		c.Values = append(c.Values, day.Income.InexactFloat64())
	}
	return []Reply{chart(c)}, nil
}

func (m *Machine) incomeByDishType(ctx context.Context, s *Session) ([]Reply, error) {
	if !s.BackOffice {
		return m.unknown(s), nil
	}

	rows, err := m.h.IncomeByDishType.Handle(ctx, queries.NewGetIncomeByDishTypeQuery())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []Reply{text("There are no sales yet")}, nil
	}

	c := Chart{Title: "Income per dish type", XLabel: "dish type", YLabel: "income ₪"}
	for _, r := range rows {
		c.Labels = append(c.Labels, r.DishType)
		c.Values = append(c.Values, r.Income.InexactFloat64())
	}
	return []Reply{chart(c)}, nil
}

func (m *Machine) dishSales(ctx context.Context, s *Session, ranking queries.SalesRanking) ([]Reply, error) {
	if !s.BackOffice {
		return m.unknown(s), nil
	}

	query, err := queries.NewGetDishSalesQuery(m.now(), ranking)
	if err != nil {
		return nil, err
	}
	rows, err := m.h.DishSales.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	if ranking == queries.WorstSellers {
		b.WriteString("the weakest dishes this month are:")
	} else {
		b.WriteString("The best selling dishes this month are:")
	}
	if len(rows) == 0 {
		b.WriteString("\n\nno sales yet")
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "\n\n%s\t\tsold\t%d\t\tand generated\t%s ₪", r.Dish, r.Quantity, r.Income.String())
	}
	return []Reply{text(b.String())}, nil
}
