package usecase_recommend

import (
	"math"

	"github.com/ninelens/reviewrec/usecase/usecase_preprocess"
)

// ItemSimilarity is the symmetric product-product cosine matrix computed from
// the interaction matrix's columns (each column is a vector over users).
// Built once per matrix and cached; read-only afterwards.
type ItemSimilarity struct {
	Sim [][]float64
}

func NewItemSimilarity(m *usecase_preprocess.InteractionMatrix) *ItemSimilarity {
	n := m.NumProducts()

	norms := make([]float64, n)
	for p, col := range m.Cols {
		var sum float64
		for _, rating := range col {
			sum += rating * rating
		}
		norms[p] = math.Sqrt(sum)
	}

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		if norms[i] > 0 {
			sim[i][i] = 1.0
		}
	}

	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			dot := sparseDot(m.Cols[i], m.Cols[j])
			if dot == 0 {
				continue
			}
			value := dot / (norms[i] * norms[j])
			sim[i][j] = value
			sim[j][i] = value
		}
	}

	return &ItemSimilarity{Sim: sim}
}

func sparseDot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for k, va := range a {
		if vb, ok := b[k]; ok {
			dot += va * vb
		}
	}
	return dot
}
