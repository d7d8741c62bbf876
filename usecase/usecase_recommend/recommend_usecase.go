package usecase_recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/usecase/usecase_preprocess"
)

type recommendUsecase struct {
	reviewRepository domain.ReviewRepository
	cache            *Cache
	contextTimeout   time.Duration

	// generation versions the raw table so imports invalidate the dataset key
	// without touching any other cache entry.
	generation int64
}

func NewRecommendUsecase(
	reviewRepository domain.ReviewRepository,
	cache *Cache,
	timeout time.Duration,
) domain.RecommendUsecase {
	return &recommendUsecase{
		reviewRepository: reviewRepository,
		cache:            cache,
		contextTimeout:   timeout,
	}
}

func (ru *recommendUsecase) dataset(ctx context.Context) (*domain.Dataset, error) {
	gen := atomic.LoadInt64(&ru.generation)
	return Memoize(ru.cache, Key("dataset", gen), func() (*domain.Dataset, error) {
		rows, err := ru.reviewRepository.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load raw reviews: %w", err)
		}
		return usecase_preprocess.Normalize(rows)
	})
}

func aggregation(params domain.FilterParams) domain.AggregatePolicy {
	if params.Aggregation == "" {
		return domain.AggregateMean
	}
	return params.Aggregation
}

func (ru *recommendUsecase) filtered(ds *domain.Dataset, params domain.FilterParams) (*domain.FilteredDataset, error) {
	key := Key("filter", ds.Fingerprint, params.MinUserReviews, params.MinProductReviews)
	return Memoize(ru.cache, key, func() (*domain.FilteredDataset, error) {
		return usecase_preprocess.FilterSparse(ds, params.MinUserReviews, params.MinProductReviews)
	})
}

func (ru *recommendUsecase) matrix(ds *domain.Dataset, params domain.FilterParams) (*usecase_preprocess.InteractionMatrix, error) {
	policy := aggregation(params)
	key := Key("matrix", ds.Fingerprint, params.MinUserReviews, params.MinProductReviews, policy)
	return Memoize(ru.cache, key, func() (*usecase_preprocess.InteractionMatrix, error) {
		fd, err := ru.filtered(ds, params)
		if err != nil {
			return nil, err
		}
		return usecase_preprocess.BuildMatrix(fd, policy), nil
	})
}

func (ru *recommendUsecase) itemSimilarity(ds *domain.Dataset, params domain.FilterParams) (*usecase_preprocess.InteractionMatrix, *ItemSimilarity, error) {
	m, err := ru.matrix(ds, params)
	if err != nil {
		return nil, nil, err
	}
	key := Key("itemsim", ds.Fingerprint, params.MinUserReviews, params.MinProductReviews, aggregation(params))
	sims, err := Memoize(ru.cache, key, func() (*ItemSimilarity, error) {
		return NewItemSimilarity(m), nil
	})
	if err != nil {
		return nil, nil, err
	}
	return m, sims, nil
}

func (ru *recommendUsecase) PopularProducts(ctx context.Context, params domain.PopularityParams) ([]domain.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	ds, err := ru.dataset(ctx)
	if err != nil {
		return nil, err
	}
	m, err := ru.matrix(ds, params.FilterParams)
	if err != nil {
		return nil, err
	}

	key := Key("popularity", ds.Fingerprint, params.MinUserReviews, params.MinProductReviews,
		aggregation(params.FilterParams), params.MinReviews)
	table, err := Memoize(ru.cache, key, func() ([]domain.Recommendation, error) {
		return RankPopular(m, params.MinReviews), nil
	})
	if err != nil {
		return nil, err
	}

	n := params.TopN
	if n > len(table) {
		n = len(table)
	}
	return append([]domain.Recommendation(nil), table[:n]...), nil
}

type knnResult struct {
	Recommendations []domain.Recommendation
	Diagnostics     *domain.ResultDiagnostics
}

func (ru *recommendUsecase) RecommendForUser(ctx context.Context, userID string, params domain.KNNParams) ([]domain.Recommendation, *domain.ResultDiagnostics, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	ds, err := ru.dataset(ctx)
	if err != nil {
		return nil, nil, err
	}
	m, sims, err := ru.itemSimilarity(ds, params.FilterParams)
	if err != nil {
		return nil, nil, err
	}

	key := Key("knn", ds.Fingerprint, params.MinUserReviews, params.MinProductReviews,
		aggregation(params.FilterParams), userID, params.LikeThreshold, params.TopN)
	result, err := Memoize(ru.cache, key, func() (knnResult, error) {
		recs, diag, err := RecommendItemKNN(m, sims, userID, params.LikeThreshold, params.TopN)
		if err != nil {
			return knnResult{}, err
		}
		return knnResult{Recommendations: recs, Diagnostics: diag}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return result.Recommendations, result.Diagnostics, nil
}

func (ru *recommendUsecase) PredictForUser(ctx context.Context, userID string, params domain.SVDParams) ([]domain.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	ds, err := ru.dataset(ctx)
	if err != nil {
		return nil, err
	}
	m, err := ru.matrix(ds, params.FilterParams)
	if err != nil {
		return nil, err
	}
	if _, ok := m.UserIndex[userID]; !ok {
		return nil, &domain.UnknownUserError{UserID: userID}
	}

	factorsKey := Key("svdfactors", ds.Fingerprint, params.MinUserReviews, params.MinProductReviews,
		aggregation(params.FilterParams), params.NComponents)
	factors, err := Memoize(ru.cache, factorsKey, func() (*LatentFactors, error) {
		return BuildLatentFactors(m, params.NComponents)
	})
	if err != nil {
		return nil, err
	}

	key := Key("svd", ds.Fingerprint, params.MinUserReviews, params.MinProductReviews,
		aggregation(params.FilterParams), userID, params.NComponents, params.TopN)
	return Memoize(ru.cache, key, func() ([]domain.Recommendation, error) {
		return RecommendSVD(m, factors, userID, params.TopN)
	})
}

func (ru *recommendUsecase) SimilarProducts(ctx context.Context, productID string, params domain.ContentParams) ([]domain.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	ds, err := ru.dataset(ctx)
	if err != nil {
		return nil, err
	}

	opts := TFIDFOptions{
		MaxFeatures: params.MaxFeatures,
		MinDocFreq:  params.MinDocFreq,
		MaxDocRatio: params.MaxDocRatio,
	}
	indexKey := Key("content", ds.Fingerprint, opts.MaxFeatures, opts.MinDocFreq, opts.MaxDocRatio)
	index, err := Memoize(ru.cache, indexKey, func() (*ContentIndex, error) {
		return BuildContentIndex(ds, opts), nil
	})
	if err != nil {
		return nil, err
	}

	key := Key("contentq", ds.Fingerprint, opts.MaxFeatures, opts.MinDocFreq, opts.MaxDocRatio,
		productID, params.TopN)
	return Memoize(ru.cache, key, func() ([]domain.Recommendation, error) {
		return SimilarByContent(index, productID, params.TopN)
	})
}

func (ru *recommendUsecase) DatasetStats(ctx context.Context, params domain.FilterParams) (*domain.DatasetStats, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	ds, err := ru.dataset(ctx)
	if err != nil {
		return nil, err
	}
	fd, err := ru.filtered(ds, params)
	if err != nil {
		return nil, err
	}

	return &domain.DatasetStats{
		RowsAfterCleaning: len(fd.Records),
		UniqueUsers:       len(fd.Users),
		UniqueProducts:    len(fd.Products),
		NumRatings:        len(fd.Records),
		RowsRemoved:       fd.RowsRemoved,
		FilterIterations:  fd.Iterations,
		HeavilyFiltered:   len(ds.Records) > 0 && float64(fd.RowsRemoved) > 0.8*float64(len(ds.Records)),
	}, nil
}

func (ru *recommendUsecase) ImportReviews(ctx context.Context, rows []domain.RawRecord) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	inserted, err := ru.reviewRepository.CreateMany(ctx, rows)
	if err != nil {
		return 0, err
	}
	atomic.AddInt64(&ru.generation, 1)
	return inserted, nil
}

func (ru *recommendUsecase) ClearReviews(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.contextTimeout)
	defer cancel()

	deleted, err := ru.reviewRepository.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	atomic.AddInt64(&ru.generation, 1)
	return deleted, nil
}
