package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ninelens/reviewrec/api/controller"
	"github.com/ninelens/reviewrec/bootstrap"
	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/mongo"
	"github.com/ninelens/reviewrec/repository"
	"github.com/ninelens/reviewrec/usecase/usecase_auth"
)

func NewSignupRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	sc := controller.SignupController{
		SignupUsecase: usecase_auth.NewSignupUsecase(ur, timeout),
		Env:           env,
	}
	group.POST("/signup", sc.Signup)
}

func NewLoginRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	lc := controller.LoginController{
		LoginUsecase: usecase_auth.NewLoginUsecase(ur, timeout),
		Env:          env,
	}
	group.POST("/login", lc.Login)
}

func NewRefreshTokenRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	rtc := controller.RefreshTokenController{
		RefreshTokenUsecase: usecase_auth.NewRefreshTokenUsecase(ur, timeout),
		Env:                 env,
	}
	group.POST("/refresh", rtc.RefreshToken)
}
