package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ninelens/reviewrec/bootstrap"
	"github.com/ninelens/reviewrec/domain"
)

type DatasetController struct {
	RecommendUsecase domain.RecommendUsecase
	Env              *bootstrap.Env
}

func NewDatasetController(usecase domain.RecommendUsecase, env *bootstrap.Env) *DatasetController {
	return &DatasetController{
		RecommendUsecase: usecase,
		Env:              env,
	}
}

// GetStats handles GET /api/dataset/stats.
func (dc *DatasetController) GetStats(ctx *gin.Context) {
	minUser, ok := intQuery(ctx, "min_user_reviews", dc.Env.MinUserReviews, 1, 20)
	if !ok {
		return
	}
	minProduct, ok := intQuery(ctx, "min_product_reviews", dc.Env.MinProductReviews, 1, 20)
	if !ok {
		return
	}

	stats, err := dc.RecommendUsecase.DatasetStats(ctx.Request.Context(), domain.FilterParams{
		MinUserReviews:    minUser,
		MinProductReviews: minProduct,
	})
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// ImportReviews handles POST /api/dataset/reviews. The caller owns CSV
// parsing; rows arrive as JSON objects keyed by source column name.
func (dc *DatasetController) ImportReviews(ctx *gin.Context) {
	var rows []domain.RawRecord
	if err := ctx.ShouldBindJSON(&rows); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "body must be a JSON array of row objects")
		return
	}
	if len(rows) == 0 {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "no rows supplied")
		return
	}

	inserted, err := dc.RecommendUsecase.ImportReviews(ctx.Request.Context(), rows)
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	SuccessResponse(ctx, "inserted", inserted, inserted)
}

// ClearReviews handles DELETE /api/dataset/reviews.
func (dc *DatasetController) ClearReviews(ctx *gin.Context) {
	deleted, err := dc.RecommendUsecase.ClearReviews(ctx.Request.Context())
	if err != nil {
		DomainErrorResponse(ctx, err)
		return
	}

	SuccessResponse(ctx, "deleted", deleted, int(deleted))
}
