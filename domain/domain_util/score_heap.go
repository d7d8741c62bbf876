package domain_util

type ScoredProduct struct {
	ProductID string
	Score     float64
}

// ScoreMinHeap keeps the current worst candidate at the root so top-N
// selection can evict it in O(log n) (based on container/heap). A candidate
// with an equal score but a greater product id orders as worse, which keeps
// truncation consistent with the descending score / ascending id ranking.
type ScoreMinHeap []ScoredProduct

func (h ScoreMinHeap) Len() int { return len(h) }
func (h ScoreMinHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].ProductID > h[j].ProductID
}
func (h ScoreMinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *ScoreMinHeap) Push(x interface{}) { *h = append(*h, x.(ScoredProduct)) }
func (h *ScoreMinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
