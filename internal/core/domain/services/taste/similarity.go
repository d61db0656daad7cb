package taste

import (
	"math"
	"sort"
)

// Matrix is a symmetric customer × customer similarity matrix.
type Matrix struct {
	customers []string
	index     map[string]int
	values    [][]float64
}

// CosineSimilarity computes pairwise cosine similarity between table rows.
// The diagonal is always 1. A zero vector has similarity 0 with every other row.
func CosineSimilarity(t *Table) *Matrix {
	n := t.Len()
	m := &Matrix{
		customers: t.Customers(),
		index:     make(map[string]int, n),
		values:    make([][]float64, n),
	}

	norms := make([]float64, n)
	for i, row := range t.rows {
		m.index[t.customers[i]] = i
		m.values[i] = make([]float64, n)
		norms[i] = math.Sqrt(dot(row, row))
	}

	for i := 0; i < n; i++ {
		m.values[i][i] = 1
		for j := i + 1; j < n; j++ {
			var s float64
			if norms[i] != 0 && norms[j] != 0 {
				s = dot(t.rows[i], t.rows[j]) / (norms[i] * norms[j])
			}
			m.values[i][j] = s
			m.values[j][i] = s
		}
	}
	return m
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// Len returns the matrix dimension.
func (m *Matrix) Len() int {
	return len(m.customers)
}

// At returns the similarity between two customers.
func (m *Matrix) At(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.values[i][j], true
}

// Closest returns up to n customers most similar to target, excluding target
// itself. Ties are broken by customer id. Unknown targets yield nil.
func (m *Matrix) Closest(target string, n int) []string {
	ti, ok := m.index[target]
	if !ok || n <= 0 {
		return nil
	}

	candidates := make([]int, 0, len(m.customers)-1)
	for i := range m.customers {
		if i != ti {
			candidates = append(candidates, i)
		}
	}

	row := m.values[ti]
	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if row[ca] != row[cb] {
			return row[ca] > row[cb]
		}
		return m.customers[ca] < m.customers[cb]
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = m.customers[c]
	}
	return out
}

// PeerCount is the number of closest customers used for recommendations.
const PeerCount = 4

// Peers runs normalization and similarity over t and returns target's n closest
// customers. It returns nil when target is absent or has no one to compare with.
func Peers(t *Table, target string, n int) []string {
	if t.Len() < 2 {
		return nil
	}
	if _, ok := t.Row(target); !ok {
		return nil
	}
	return CosineSimilarity(Normalize(t)).Closest(target, n)
}
