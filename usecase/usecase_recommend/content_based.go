package usecase_recommend

import (
	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/domain/domain_util"
)

// SimilarByContent ranks every other product by the cosine similarity of its
// TF-IDF vector to the target's. The target itself is never returned.
// Zero-vector products (no review text) score 0 against everything and sort
// last; they are valid, not errors.
func SimilarByContent(idx *ContentIndex, productID string, topN int) ([]domain.Recommendation, error) {
	target, ok := idx.ProductIndex[productID]
	if !ok {
		return nil, &domain.UnknownProductError{ProductID: productID}
	}

	targetVector := idx.Vectors[target]
	candidates := make([]domain_util.ScoredProduct, 0, len(idx.Products)-1)
	for p, vector := range idx.Vectors {
		if p == target {
			continue
		}
		candidates = append(candidates, domain_util.ScoredProduct{
			ProductID: idx.Products[p],
			// vectors are L2-normalized, so the dot product is the cosine
			Score: sparseDot(targetVector, vector),
		})
	}

	return rankTop(candidates, topN), nil
}
