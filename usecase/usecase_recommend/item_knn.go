package usecase_recommend

import (
	"fmt"

	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/domain/domain_util"
	"github.com/ninelens/reviewrec/usecase/usecase_preprocess"
)

// RecommendItemKNN scores every product the target user has not rated by the
// summed cosine similarity to the user's liked set (ratings >= likeThreshold).
// Already-rated products are never recommended. An empty liked set or an
// all-zero neighborhood yields an empty list with a reason, not an error.
func RecommendItemKNN(
	m *usecase_preprocess.InteractionMatrix,
	sims *ItemSimilarity,
	userID string,
	likeThreshold float64,
	topN int,
) ([]domain.Recommendation, *domain.ResultDiagnostics, error) {
	userIdx, ok := m.UserIndex[userID]
	if !ok {
		return nil, nil, &domain.UnknownUserError{UserID: userID}
	}

	row := m.Rows[userIdx]
	liked := make([]int, 0, len(row))
	for p, rating := range row {
		if rating >= likeThreshold {
			liked = append(liked, p)
		}
	}
	if len(liked) == 0 {
		reason := fmt.Sprintf("user %q has no ratings at or above %.1f", userID, likeThreshold)
		return []domain.Recommendation{}, &domain.ResultDiagnostics{Reason: reason}, nil
	}

	candidates := make([]domain_util.ScoredProduct, 0, m.NumProducts()-len(row))
	for q := 0; q < m.NumProducts(); q++ {
		if _, rated := row[q]; rated {
			continue
		}
		var score float64
		for _, p := range liked {
			score += sims.Sim[p][q]
		}
		if score > 0 {
			candidates = append(candidates, domain_util.ScoredProduct{
				ProductID: m.Products[q],
				Score:     score,
			})
		}
	}
	if len(candidates) == 0 {
		reason := fmt.Sprintf("no unrated products share any rater with the liked set of user %q", userID)
		return []domain.Recommendation{}, &domain.ResultDiagnostics{Reason: reason}, nil
	}

	return rankTop(candidates, topN), nil, nil
}
