package usecase_recommend

import (
	"math"
	"sort"

	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/usecase/usecase_preprocess"
)

// RankPopular computes the Bayesian-weighted popularity ranking over every
// product with at least minReviews ratings:
//
//	score = (v/(v+m))*R + (m/(v+m))*C
//
// where v is the product's rating count, R its mean rating, m the minimum
// review gate and C the mean rating over all qualifying products. Small
// samples are pulled toward C; products below the gate are excluded outright,
// not down-weighted.
func RankPopular(m *usecase_preprocess.InteractionMatrix, minReviews int) []domain.Recommendation {
	type productStat struct {
		idx   int
		sum   float64
		count int
	}

	qualifying := make([]productStat, 0, m.NumProducts())
	var globalSum float64
	var globalCount int
	for p, col := range m.Cols {
		if len(col) < minReviews {
			continue
		}
		var sum float64
		for _, rating := range col {
			sum += rating
		}
		qualifying = append(qualifying, productStat{idx: p, sum: sum, count: len(col)})
		globalSum += sum
		globalCount += len(col)
	}

	if len(qualifying) == 0 {
		return []domain.Recommendation{}
	}
	globalMean := globalSum / float64(globalCount)

	recommendations := make([]domain.Recommendation, 0, len(qualifying))
	gate := float64(minReviews)
	for _, s := range qualifying {
		v := float64(s.count)
		mean := s.sum / v
		score := (v/(v+gate))*mean + (gate/(v+gate))*globalMean
		recommendations = append(recommendations, domain.Recommendation{
			ProductID:   m.Products[s.idx],
			Score:       score,
			MeanRating:  math.Round(mean*100) / 100,
			RatingCount: s.count,
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].Score != recommendations[j].Score {
			return recommendations[i].Score > recommendations[j].Score
		}
		return recommendations[i].ProductID < recommendations[j].ProductID
	})
	for i := range recommendations {
		recommendations[i].Rank = i + 1
	}

	return recommendations
}
