package usecase_recommend

import (
	"errors"

	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/domain/domain_util"
	"github.com/ninelens/reviewrec/usecase/usecase_preprocess"
	"gonum.org/v1/gonum/mat"
)

// LatentFactors holds the rank-k truncation of the interaction matrix's
// singular value decomposition. The matrix is factorized raw, not
// mean-centered, so a zero entry keeps meaning "no rating" rather than
// "low rating". Owned by the SVD recommender and rebuilt whenever the matrix
// or the rank changes.
type LatentFactors struct {
	U *mat.Dense // users x k
	S []float64  // k singular values
	V *mat.Dense // products x k
	K int
}

// BuildLatentFactors factorizes the interaction matrix at the requested rank,
// clamped to [1, min(users, products)-1].
func BuildLatentFactors(m *usecase_preprocess.InteractionMatrix, nComponents int) (*LatentFactors, error) {
	nUsers := m.NumUsers()
	nProducts := m.NumProducts()

	maxK := nUsers
	if nProducts < maxK {
		maxK = nProducts
	}
	maxK--
	if maxK < 1 {
		maxK = 1
	}
	k := nComponents
	if k > maxK {
		k = maxK
	}
	if k < 1 {
		k = 1
	}

	dense := mat.NewDense(nUsers, nProducts, nil)
	for u, row := range m.Rows {
		for p, rating := range row {
			dense.Set(u, p, rating)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDThin); !ok {
		return nil, errors.New("singular value decomposition did not converge")
	}

	var uFull, vFull mat.Dense
	svd.UTo(&uFull)
	svd.VTo(&vFull)
	values := svd.Values(nil)
	if k > len(values) {
		k = len(values)
	}

	uk := mat.NewDense(nUsers, k, nil)
	for i := 0; i < nUsers; i++ {
		for j := 0; j < k; j++ {
			uk.Set(i, j, uFull.At(i, j))
		}
	}
	vk := mat.NewDense(nProducts, k, nil)
	for i := 0; i < nProducts; i++ {
		for j := 0; j < k; j++ {
			vk.Set(i, j, vFull.At(i, j))
		}
	}
	sk := make([]float64, k)
	copy(sk, values[:k])

	return &LatentFactors{U: uk, S: sk, V: vk, K: k}, nil
}

// PredictRow reconstructs the user's full predicted-rating row from the
// truncated factors. Scores are unbounded reconstructions used for relative
// ranking only, never shown as literal predicted ratings.
func (f *LatentFactors) PredictRow(userIdx int) []float64 {
	nProducts, _ := f.V.Dims()
	predicted := make([]float64, nProducts)
	for p := 0; p < nProducts; p++ {
		var score float64
		for j := 0; j < f.K; j++ {
			score += f.U.At(userIdx, j) * f.S[j] * f.V.At(p, j)
		}
		predicted[p] = score
	}
	return predicted
}

// RecommendSVD ranks the target user's unrated products by reconstructed
// score, descending.
func RecommendSVD(
	m *usecase_preprocess.InteractionMatrix,
	factors *LatentFactors,
	userID string,
	topN int,
) ([]domain.Recommendation, error) {
	userIdx, ok := m.UserIndex[userID]
	if !ok {
		return nil, &domain.UnknownUserError{UserID: userID}
	}

	predicted := factors.PredictRow(userIdx)
	row := m.Rows[userIdx]

	candidates := make([]domain_util.ScoredProduct, 0, len(predicted)-len(row))
	for p, score := range predicted {
		if _, rated := row[p]; rated {
			continue
		}
		candidates = append(candidates, domain_util.ScoredProduct{
			ProductID: m.Products[p],
			Score:     score,
		})
	}

	return rankTop(candidates, topN), nil
}
