package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ninelens/reviewrec/api/middleware"
	"github.com/ninelens/reviewrec/bootstrap"
	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/mongo"
	"github.com/ninelens/reviewrec/repository"
	"github.com/ninelens/reviewrec/usecase/usecase_recommend"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	publicRouter := gin.Group("")
	NewSignupRouter(env, timeout, db, publicRouter)
	NewLoginRouter(env, timeout, db, publicRouter)
	NewRefreshTokenRouter(env, timeout, db, publicRouter)

	protectedRouter := gin.Group("/api")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	// One usecase instance backs both routers so imports invalidate the
	// recommenders' dataset generation.
	reviewRepository := repository.NewReviewRepository(db, domain.CollectionRawReview)
	recommendUsecase := usecase_recommend.NewRecommendUsecase(
		reviewRepository,
		usecase_recommend.NewCache(),
		timeout,
	)

	NewRecommendRouter(env, recommendUsecase, protectedRouter)
	NewDatasetRouter(env, recommendUsecase, protectedRouter)
}
