package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ninelens/reviewrec/bootstrap"
	"github.com/ninelens/reviewrec/domain"
)

type RecommendController struct {
	RecommendUsecase domain.RecommendUsecase
	Env              *bootstrap.Env
}

func NewRecommendController(usecase domain.RecommendUsecase, env *bootstrap.Env) *RecommendController {
	return &RecommendController{
		RecommendUsecase: usecase,
		Env:              env,
	}
}

// intQuery parses an optional integer query parameter, enforcing its bounds.
// On failure it writes the error response and reports false.
func intQuery(ctx *gin.Context, name string, def, min, max int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETER", name+" must be an integer")
		return 0, false
	}
	if value < min || value > max {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETER",
			name+" must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
		return 0, false
	}
	return value, true
}

func floatQuery(ctx *gin.Context, name string, def, min, max float64) (float64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETER", name+" must be a number")
		return 0, false
	}
	if value < min || value > max {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETER",
			name+" is out of range")
		return 0, false
	}
	return value, true
}

func (rc *RecommendController) filterParams(ctx *gin.Context) (domain.FilterParams, bool) {
	minUser, ok := intQuery(ctx, "min_user_reviews", rc.Env.MinUserReviews, 1, 20)
	if !ok {
		return domain.FilterParams{}, false
	}
	minProduct, ok := intQuery(ctx, "min_product_reviews", rc.Env.MinProductReviews, 1, 20)
	if !ok {
		return domain.FilterParams{}, false
	}
	return domain.FilterParams{
		MinUserReviews:    minUser,
		MinProductReviews: minProduct,
		Aggregation:       domain.AggregateMean,
	}, true
}

// GetPopular handles GET /api/recommend/popular.
func (rc *RecommendController) GetPopular(ctx *gin.Context) {
	filter, ok := rc.filterParams(ctx)
	if !ok {
		return
	}
	limit, ok := intQuery(ctx, "limit", rc.Env.TopN, 3, 30)
	if !ok {
		return
	}
	minReviews, ok := intQuery(ctx, "min_reviews", rc.Env.MinReviewsForPopularity, 1, 50)
	if !ok {
		return
	}

	recommendations, err := rc.RecommendUsecase.PopularProducts(ctx.Request.Context(), domain.PopularityParams{
		FilterParams: filter,
		MinReviews:   minReviews,
		TopN:         limit,
	})
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}

// GetForUser handles GET /api/recommend/user (item-item collaborative
// filtering).
func (rc *RecommendController) GetForUser(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETER", "user_id is required")
		return
	}
	filter, ok := rc.filterParams(ctx)
	if !ok {
		return
	}
	limit, ok := intQuery(ctx, "limit", rc.Env.TopN, 3, 30)
	if !ok {
		return
	}
	likeThreshold, ok := floatQuery(ctx, "like_threshold", rc.Env.LikeThreshold, 1.0, 5.0)
	if !ok {
		return
	}

	recommendations, diagnostics, err := rc.RecommendUsecase.RecommendForUser(ctx.Request.Context(), userID, domain.KNNParams{
		FilterParams:  filter,
		LikeThreshold: likeThreshold,
		TopN:          limit,
	})
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	if diagnostics != nil && diagnostics.Reason != "" {
		ctx.JSON(http.StatusOK, gin.H{
			"recommendations": recommendations,
			"total":           len(recommendations),
			"reason":          diagnostics.Reason,
		})
		return
	}
	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}

// GetSVD handles GET /api/recommend/svd (latent-factor prediction).
func (rc *RecommendController) GetSVD(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETER", "user_id is required")
		return
	}
	filter, ok := rc.filterParams(ctx)
	if !ok {
		return
	}
	limit, ok := intQuery(ctx, "limit", rc.Env.TopN, 3, 30)
	if !ok {
		return
	}
	nComponents, ok := intQuery(ctx, "n_components", rc.Env.NComponents, 5, 100)
	if !ok {
		return
	}

	recommendations, err := rc.RecommendUsecase.PredictForUser(ctx.Request.Context(), userID, domain.SVDParams{
		FilterParams: filter,
		NComponents:  nComponents,
		TopN:         limit,
	})
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}

// GetSimilar handles GET /api/recommend/content (text similarity).
func (rc *RecommendController) GetSimilar(ctx *gin.Context) {
	productID := ctx.Query("product_id")
	if productID == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETER", "product_id is required")
		return
	}
	limit, ok := intQuery(ctx, "limit", rc.Env.TopN, 3, 30)
	if !ok {
		return
	}
	maxFeatures, ok := intQuery(ctx, "max_features", rc.Env.MaxFeatures, 1, 100000)
	if !ok {
		return
	}
	minDocFreq, ok := intQuery(ctx, "min_df", 1, 1, 100)
	if !ok {
		return
	}
	maxDocRatio, ok := floatQuery(ctx, "max_df", 1.0, 0.1, 1.0)
	if !ok {
		return
	}

	recommendations, err := rc.RecommendUsecase.SimilarProducts(ctx.Request.Context(), productID, domain.ContentParams{
		TopN:        limit,
		MaxFeatures: maxFeatures,
		MinDocFreq:  minDocFreq,
		MaxDocRatio: maxDocRatio,
	})
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}
