package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ninelens/reviewrec/api/controller"
	"github.com/ninelens/reviewrec/bootstrap"
	"github.com/ninelens/reviewrec/domain"
)

func NewDatasetRouter(env *bootstrap.Env, usecase domain.RecommendUsecase, group *gin.RouterGroup) {
	datasetCtrl := controller.NewDatasetController(usecase, env)

	datasetGroup := group.Group("/dataset")
	{
		// GET /dataset/stats?min_user_reviews=3&min_product_reviews=3
		datasetGroup.GET("/stats", datasetCtrl.GetStats)

		// POST /dataset/reviews  (JSON array of raw rows)
		datasetGroup.POST("/reviews", datasetCtrl.ImportReviews)

		// DELETE /dataset/reviews
		datasetGroup.DELETE("/reviews", datasetCtrl.ClearReviews)
	}
}
