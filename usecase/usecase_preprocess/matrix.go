package usecase_preprocess

import (
	"sort"

	"github.com/ninelens/reviewrec/domain"
)

// InteractionMatrix is the sparse user x product rating matrix plus its
// bidirectional id/index dictionaries. Indices follow first-seen order over
// the filtered records, so identical input always yields identical layout.
// Immutable once built; new data means a full rebuild.
type InteractionMatrix struct {
	Users    []string
	Products []string

	UserIndex    map[string]int
	ProductIndex map[string]int

	// Rows[u] maps product index -> rating; Cols[p] maps user index -> rating.
	// Both views exist because item-item similarity walks columns while
	// per-user queries walk rows.
	Rows []map[int]float64
	Cols []map[int]float64
}

// BuildMatrix maps filtered records onto the interaction matrix. Repeated
// (user, product) pairs that survived deduplication (distinct text or date)
// collapse into one entry by the given policy: AggregateMean averages the
// pair's ratings, AggregateLast keeps the last record in input order.
func BuildMatrix(fd *domain.FilteredDataset, policy domain.AggregatePolicy) *InteractionMatrix {
	m := &InteractionMatrix{
		UserIndex:    make(map[string]int),
		ProductIndex: make(map[string]int),
	}

	type cell struct {
		sum   float64
		count int
		last  float64
	}
	cells := make(map[[2]int]*cell)

	for _, r := range fd.Records {
		u, ok := m.UserIndex[r.UserID]
		if !ok {
			u = len(m.Users)
			m.UserIndex[r.UserID] = u
			m.Users = append(m.Users, r.UserID)
			m.Rows = append(m.Rows, make(map[int]float64))
		}
		p, ok := m.ProductIndex[r.ProductID]
		if !ok {
			p = len(m.Products)
			m.ProductIndex[r.ProductID] = p
			m.Products = append(m.Products, r.ProductID)
			m.Cols = append(m.Cols, make(map[int]float64))
		}

		key := [2]int{u, p}
		c, ok := cells[key]
		if !ok {
			c = &cell{}
			cells[key] = c
		}
		c.sum += r.Rating
		c.count++
		c.last = r.Rating
	}

	for key, c := range cells {
		value := c.last
		if policy != domain.AggregateLast {
			value = c.sum / float64(c.count)
		}
		m.Rows[key[0]][key[1]] = value
		m.Cols[key[1]][key[0]] = value
	}

	return m
}

func (m *InteractionMatrix) NumUsers() int    { return len(m.Users) }
func (m *InteractionMatrix) NumProducts() int { return len(m.Products) }

// Rating returns the matrix entry, zero meaning "no rating".
func (m *InteractionMatrix) Rating(userIdx, productIdx int) float64 {
	return m.Rows[userIdx][productIdx]
}

// RatedProducts returns the product indices a user has rated, ascending.
func (m *InteractionMatrix) RatedProducts(userIdx int) []int {
	rated := make([]int, 0, len(m.Rows[userIdx]))
	for p := range m.Rows[userIdx] {
		rated = append(rated, p)
	}
	sort.Ints(rated)
	return rated
}
