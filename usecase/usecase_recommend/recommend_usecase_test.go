package usecase_recommend

import (
	"context"
	"testing"
	"time"

	"github.com/ninelens/reviewrec/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryReviewRepository backs the usecase tests without a database.
type memoryReviewRepository struct {
	rows     []domain.RawRecord
	getCalls int
}

func (r *memoryReviewRepository) CreateMany(_ context.Context, rows []domain.RawRecord) (int, error) {
	r.rows = append(r.rows, rows...)
	return len(rows), nil
}

func (r *memoryReviewRepository) GetAll(_ context.Context) ([]domain.RawRecord, error) {
	r.getCalls++
	return append([]domain.RawRecord(nil), r.rows...), nil
}

func (r *memoryReviewRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *memoryReviewRepository) DeleteAll(_ context.Context) (int64, error) {
	deleted := int64(len(r.rows))
	r.rows = nil
	return deleted, nil
}

func reviewRow(user, asin string, rating float64, text string) domain.RawRecord {
	return domain.RawRecord{
		domain.ColumnUsername: user,
		domain.ColumnASINs:    asin,
		domain.ColumnRating:   rating,
		domain.ColumnText:     text,
	}
}

func seededUsecase(t *testing.T) (domain.RecommendUsecase, *memoryReviewRepository) {
	t.Helper()
	repo := &memoryReviewRepository{}
	_, err := repo.CreateMany(context.Background(), []domain.RawRecord{
		reviewRow("alice", "B001", 5, "excellent tablet bright screen"),
		reviewRow("alice", "B002", 5, "fine tablet decent screen"),
		reviewRow("alice", "B003", 1, "awful cable frayed quickly"),
		reviewRow("bob", "B001", 5, "superb tablet"),
		reviewRow("bob", "B004", 5, "great charger fast"),
		reviewRow("carol", "B002", 4, "good tablet"),
		reviewRow("carol", "B003", 5, "sturdy cable works"),
		reviewRow("carol", "B004", 4, "solid charger"),
	})
	require.NoError(t, err)
	return NewRecommendUsecase(repo, NewCache(), 5*time.Second), repo
}

func defaultFilter() domain.FilterParams {
	return domain.FilterParams{MinUserReviews: 1, MinProductReviews: 1}
}

func TestPopularProductsEndToEnd(t *testing.T) {
	uc, _ := seededUsecase(t)

	recs, err := uc.PopularProducts(context.Background(), domain.PopularityParams{
		FilterParams: defaultFilter(),
		MinReviews:   2,
		TopN:         10,
	})
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	for i, r := range recs {
		assert.Equal(t, i+1, r.Rank)
		assert.Positive(t, r.RatingCount)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Score, r.Score)
		}
	}
}

func TestPopularProductsTruncatesSharedTable(t *testing.T) {
	uc, _ := seededUsecase(t)

	full, err := uc.PopularProducts(context.Background(), domain.PopularityParams{
		FilterParams: defaultFilter(), MinReviews: 1, TopN: 10,
	})
	require.NoError(t, err)
	short, err := uc.PopularProducts(context.Background(), domain.PopularityParams{
		FilterParams: defaultFilter(), MinReviews: 1, TopN: 2,
	})
	require.NoError(t, err)

	require.Len(t, short, 2)
	assert.Equal(t, full[:2], short)
}

func TestRecommendForUserEndToEnd(t *testing.T) {
	uc, _ := seededUsecase(t)

	recs, diag, err := uc.RecommendForUser(context.Background(), "alice", domain.KNNParams{
		FilterParams:  defaultFilter(),
		LikeThreshold: 4.0,
		TopN:          10,
	})
	require.NoError(t, err)
	assert.Nil(t, diag)
	require.NotEmpty(t, recs)

	// alice already rated B001..B003
	for _, r := range recs {
		assert.NotContains(t, []string{"B001", "B002", "B003"}, r.ProductID)
	}
}

func TestRecommendForUserUnknown(t *testing.T) {
	uc, _ := seededUsecase(t)

	_, _, err := uc.RecommendForUser(context.Background(), "mallory", domain.KNNParams{
		FilterParams:  defaultFilter(),
		LikeThreshold: 4.0,
		TopN:          10,
	})
	var unknownErr *domain.UnknownUserError
	require.ErrorAs(t, err, &unknownErr)
}

func TestPredictForUserEndToEnd(t *testing.T) {
	uc, _ := seededUsecase(t)

	recs, err := uc.PredictForUser(context.Background(), "bob", domain.SVDParams{
		FilterParams: defaultFilter(),
		NComponents:  2,
		TopN:         10,
	})
	require.NoError(t, err)

	for _, r := range recs {
		assert.NotContains(t, []string{"B001", "B004"}, r.ProductID)
	}
}

func TestSimilarProductsEndToEnd(t *testing.T) {
	uc, _ := seededUsecase(t)

	recs, err := uc.SimilarProducts(context.Background(), "B001", domain.ContentParams{
		TopN:        10,
		MaxFeatures: 5000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	// B002 shares "tablet" and "screen" vocabulary with B001
	assert.Equal(t, "B002", recs[0].ProductID)
	for _, r := range recs {
		assert.NotEqual(t, "B001", r.ProductID)
	}
}

func TestDatasetStats(t *testing.T) {
	uc, _ := seededUsecase(t)

	stats, err := uc.DatasetStats(context.Background(), defaultFilter())
	require.NoError(t, err)

	assert.Equal(t, 8, stats.RowsAfterCleaning)
	assert.Equal(t, 3, stats.UniqueUsers)
	assert.Equal(t, 4, stats.UniqueProducts)
	assert.False(t, stats.HeavilyFiltered)
}

func TestDatasetIsLoadedOncePerGeneration(t *testing.T) {
	uc, repo := seededUsecase(t)

	_, err := uc.DatasetStats(context.Background(), defaultFilter())
	require.NoError(t, err)
	_, err = uc.PopularProducts(context.Background(), domain.PopularityParams{
		FilterParams: defaultFilter(), MinReviews: 1, TopN: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getCalls)
}

func TestImportReviewsInvalidatesDataset(t *testing.T) {
	uc, repo := seededUsecase(t)

	before, err := uc.DatasetStats(context.Background(), defaultFilter())
	require.NoError(t, err)

	inserted, err := uc.ImportReviews(context.Background(), []domain.RawRecord{
		reviewRow("dave", "B005", 4, "new speaker deep bass"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	after, err := uc.DatasetStats(context.Background(), defaultFilter())
	require.NoError(t, err)

	assert.Equal(t, before.RowsAfterCleaning+1, after.RowsAfterCleaning)
	assert.Equal(t, 2, repo.getCalls)
}

func TestClearReviewsInvalidatesDataset(t *testing.T) {
	uc, _ := seededUsecase(t)

	_, err := uc.DatasetStats(context.Background(), defaultFilter())
	require.NoError(t, err)

	deleted, err := uc.ClearReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), deleted)

	// with zero rows every required column is absent, so normalization
	// rejects the reloaded table outright
	_, err = uc.DatasetStats(context.Background(), defaultFilter())
	require.Error(t, err)
	var schemaErr *domain.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}
