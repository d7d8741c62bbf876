package usecase_recommend

import (
	"container/heap"
	"sort"

	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/domain/domain_util"
)

// rankTop selects the topN best candidates and returns them ordered
// descending by score, ties broken by product id ascending, ranks 1..n.
// Selection goes through a bounded min-heap so a large candidate pool never
// gets fully sorted.
func rankTop(candidates []domain_util.ScoredProduct, topN int) []domain.Recommendation {
	if topN <= 0 || len(candidates) == 0 {
		return []domain.Recommendation{}
	}

	h := &domain_util.ScoreMinHeap{}
	heap.Init(h)
	for _, c := range candidates {
		if h.Len() < topN {
			heap.Push(h, c)
			continue
		}
		worst := (*h)[0]
		if c.Score > worst.Score || (c.Score == worst.Score && c.ProductID < worst.ProductID) {
			heap.Pop(h)
			heap.Push(h, c)
		}
	}

	selected := make([]domain_util.ScoredProduct, h.Len())
	copy(selected, *h)
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].Score != selected[j].Score {
			return selected[i].Score > selected[j].Score
		}
		return selected[i].ProductID < selected[j].ProductID
	})

	recommendations := make([]domain.Recommendation, len(selected))
	for i, s := range selected {
		recommendations[i] = domain.Recommendation{
			ProductID: s.ProductID,
			Score:     s.Score,
			Rank:      i + 1,
		}
	}
	return recommendations
}
