package taste

import (
	"fmt"
	"sort"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/pkg/errs"
)

// PriceColumn is the index of the average price column; tag columns follow it
// in catalog.AllTags order.
const PriceColumn = 0

// Columns returns the column names of a taste table.
func Columns() []string {
	cols := []string{"avg_price"}
	for _, t := range catalog.AllTags() {
		cols = append(cols, t.String())
	}
	return cols
}

// ColumnCount is the width of every taste table row.
func ColumnCount() int {
	return len(catalog.AllTags()) + 1
}

// Table holds one feature row per customer. Rows keep insertion order.
type Table struct {
	customers []string
	index     map[string]int
	rows      [][]float64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Add appends a customer row. The row is copied.
func (t *Table) Add(customer string, values []float64) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	if len(values) != ColumnCount() {
		return errs.NewValueIsInvalidErrorWithCause("values",
			fmt.Errorf("got %d columns, want %d", len(values), ColumnCount()))
	}
	if _, ok := t.index[customer]; ok {
		return errs.NewValueIsInvalidErrorWithCause("customer", fmt.Errorf("%s is already in the table", customer))
	}

	row := make([]float64, len(values))
	copy(row, values)
	t.add(customer, row)
	return nil
}

// add appends a row the table takes ownership of. The caller guarantees a unique
// customer and a full-width row.
func (t *Table) add(customer string, row []float64) {
	t.index[customer] = len(t.rows)
	t.customers = append(t.customers, customer)
	t.rows = append(t.rows, row)
}

// Len returns the number of customers.
func (t *Table) Len() int {
	return len(t.rows)
}

// Customers returns the customer ids in row order.
func (t *Table) Customers() []string {
	out := make([]string, len(t.customers))
	copy(out, t.customers)
	return out
}

// Row returns a copy of the customer's feature row.
func (t *Table) Row(customer string) ([]float64, bool) {
	i, ok := t.index[customer]
	if !ok {
		return nil, false
	}
	row := make([]float64, len(t.rows[i]))
	copy(row, t.rows[i])
	return row, true
}

// HistoryLine is one historical order line reduced to what the profile needs.
type HistoryLine struct {
	Customer string
	Price    float64
	Tags     catalog.Tags
}

// BuildTable aggregates history into a taste table: per customer the average line
// price and the fraction of lines carrying each tag. Rows are sorted by customer.
func BuildTable(history []HistoryLine) *Table {
	type acc struct {
		lines    int
		priceSum float64
		tagCount []int
	}

	byCustomer := make(map[string]*acc)
	for _, line := range history {
		if line.Customer == "" {
			continue
		}
		a, ok := byCustomer[line.Customer]
		if !ok {
			a = &acc{tagCount: make([]int, len(catalog.AllTags()))}
			byCustomer[line.Customer] = a
		}
		a.lines++
		a.priceSum += line.Price
		for i, tag := range catalog.AllTags() {
			if line.Tags.Has(tag) {
				a.tagCount[i]++
			}
		}
	}

	customers := make([]string, 0, len(byCustomer))
	for c := range byCustomer {
		customers = append(customers, c)
	}
	sort.Strings(customers)

	table := NewTable()
	for _, c := range customers {
		a := byCustomer[c]
		row := make([]float64, ColumnCount())
		row[PriceColumn] = a.priceSum / float64(a.lines)
		for i, n := range a.tagCount {
			row[i+1] = float64(n) / float64(a.lines)
		}
		table.add(c, row)
	}
	return table
}

// Normalize min-max scales every column to [0, 1]. A constant column scales to 0.
func Normalize(t *Table) *Table {
	out := NewTable()
	if t.Len() == 0 {
		return out
	}

	width := ColumnCount()
	mins := make([]float64, width)
	maxs := make([]float64, width)
	copy(mins, t.rows[0])
	copy(maxs, t.rows[0])
	for _, row := range t.rows[1:] {
		for j, v := range row {
			mins[j] = min(mins[j], v)
			maxs[j] = max(maxs[j], v)
		}
	}

	for i, row := range t.rows {
		scaled := make([]float64, width)
		for j, v := range row {
			span := maxs[j] - mins[j]
			if span == 0 {
				continue
			}
			scaled[j] = (v - mins[j]) / span
		}
		out.add(t.customers[i], scaled)
	}
	return out
}
