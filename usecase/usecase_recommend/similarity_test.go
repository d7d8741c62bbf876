package usecase_recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemSimilarityIdenticalAndDisjointColumns(t *testing.T) {
	// p1 and p2 share the exact same raters and ratings; p3 shares none
	m := matrixOf(t,
		rated("u1", "p1", 5),
		rated("u1", "p2", 5),
		rated("u2", "p1", 3),
		rated("u2", "p2", 3),
		rated("u3", "p3", 4),
	)
	sims := NewItemSimilarity(m)

	p1 := m.ProductIndex["p1"]
	p2 := m.ProductIndex["p2"]
	p3 := m.ProductIndex["p3"]

	assert.InDelta(t, 1.0, sims.Sim[p1][p2], 1e-9)
	assert.Zero(t, sims.Sim[p1][p3])
	assert.Zero(t, sims.Sim[p2][p3])
}

func TestItemSimilaritySymmetryAndDiagonal(t *testing.T) {
	m := matrixOf(t,
		rated("u1", "p1", 5),
		rated("u1", "p2", 2),
		rated("u2", "p1", 1),
		rated("u2", "p3", 4),
		rated("u3", "p2", 3),
		rated("u3", "p3", 5),
	)
	sims := NewItemSimilarity(m)

	n := m.NumProducts()
	require.Len(t, sims.Sim, n)
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1.0, sims.Sim[i][i], 1e-9)
		for j := 0; j < n; j++ {
			assert.InDelta(t, sims.Sim[i][j], sims.Sim[j][i], 1e-9)
			assert.GreaterOrEqual(t, sims.Sim[i][j], 0.0)
			assert.LessOrEqual(t, sims.Sim[i][j], 1.0+1e-9)
		}
	}
}

func TestItemSimilarityPartialOverlap(t *testing.T) {
	m := matrixOf(t,
		rated("u1", "p1", 4),
		rated("u1", "p2", 4),
		rated("u2", "p1", 4),
	)
	sims := NewItemSimilarity(m)

	value := sims.Sim[m.ProductIndex["p1"]][m.ProductIndex["p2"]]
	assert.Greater(t, value, 0.0)
	assert.Less(t, value, 1.0)
}
