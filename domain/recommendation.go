package domain

import "context"

// Recommendation is one ranked entry of a recommender's output. Sequences are
// ordered descending by score with ties broken by product id ascending.
type Recommendation struct {
	ProductID string  `json:"product_id"`
	Score     float64 `json:"score"`
	Rank      int     `json:"rank"`

	// Populated by the popularity ranker only.
	MeanRating  float64 `json:"mean_rating,omitempty"`
	RatingCount int     `json:"rating_count,omitempty"`
}

// ResultDiagnostics explains an empty-but-valid result. An empty liked set or
// an all-zero similarity neighborhood is not an error.
type ResultDiagnostics struct {
	Reason string `json:"reason,omitempty"`
}

// AggregatePolicy selects how repeated (user, product) ratings collapse into
// one matrix entry.
type AggregatePolicy string

const (
	AggregateMean AggregatePolicy = "mean"
	AggregateLast AggregatePolicy = "last"
)

// FilterParams are the sparsity-filtering thresholds shared by every
// matrix-backed query.
type FilterParams struct {
	MinUserReviews    int             `form:"min_user_reviews"`
	MinProductReviews int             `form:"min_product_reviews"`
	Aggregation       AggregatePolicy `form:"-"`
}

type PopularityParams struct {
	FilterParams
	MinReviews int `form:"min_reviews"`
	TopN       int `form:"limit"`
}

type KNNParams struct {
	FilterParams
	LikeThreshold float64 `form:"like_threshold"`
	TopN          int     `form:"limit"`
}

type SVDParams struct {
	FilterParams
	NComponents int `form:"n_components"`
	TopN        int `form:"limit"`
}

type ContentParams struct {
	TopN        int     `form:"limit"`
	MaxFeatures int     `form:"max_features"`
	MinDocFreq  int     `form:"min_df"`
	MaxDocRatio float64 `form:"max_df"`
}

// RecommendUsecase is the single front door of the recommendation core: one
// query entry point per algorithm plus dataset management.
type RecommendUsecase interface {
	PopularProducts(ctx context.Context, params PopularityParams) ([]Recommendation, error)
	RecommendForUser(ctx context.Context, userID string, params KNNParams) ([]Recommendation, *ResultDiagnostics, error)
	PredictForUser(ctx context.Context, userID string, params SVDParams) ([]Recommendation, error)
	SimilarProducts(ctx context.Context, productID string, params ContentParams) ([]Recommendation, error)
	DatasetStats(ctx context.Context, params FilterParams) (*DatasetStats, error)
	ImportReviews(ctx context.Context, rows []RawRecord) (int, error)
	ClearReviews(ctx context.Context) (int64, error)
}
