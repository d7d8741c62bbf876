package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ninelens/reviewrec/api/controller"
	"github.com/ninelens/reviewrec/bootstrap"
	"github.com/ninelens/reviewrec/domain"
)

func NewRecommendRouter(env *bootstrap.Env, usecase domain.RecommendUsecase, group *gin.RouterGroup) {
	recommendCtrl := controller.NewRecommendController(usecase, env)

	recommendGroup := group.Group("/recommend")
	{
		// GET /recommend/popular?limit=10&min_reviews=5
		recommendGroup.GET("/popular", recommendCtrl.GetPopular)

		// GET /recommend/user?user_id=xxx&limit=10&like_threshold=4.0
		recommendGroup.GET("/user", recommendCtrl.GetForUser)

		// GET /recommend/svd?user_id=xxx&limit=10&n_components=20
		recommendGroup.GET("/svd", recommendCtrl.GetSVD)

		// GET /recommend/content?product_id=xxx&limit=10&max_features=5000
		recommendGroup.GET("/content", recommendCtrl.GetSimilar)
	}
}
