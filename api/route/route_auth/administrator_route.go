package route_auth

import (
	"time"

	"github.com/ddc-studio/portfolio-api/api/controller/controller_auth"
	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/repository/repository_auth"
	"github.com/ddc-studio/portfolio-api/usecase/usecase_auth"
	"github.com/gin-gonic/gin"
)

func NewAdministratorRouter(
	secret string,
	expiryHours int,
	timeout time.Duration,
	db mongo.Database,
	publicGroup *gin.RouterGroup,
	protectedGroup *gin.RouterGroup,
) {
	repo := repository_auth.NewAdministratorRepository(db, domain.CollectionAdministrator)
	uc := usecase_auth.NewAdministratorUsecase(repo, secret, expiryHours, timeout)
	ctrl := controller_auth.NewAdministratorController(uc)

	publicGroup.POST("/admin/login", ctrl.Login)
	protectedGroup.POST("/admin/administrators", ctrl.CreateAdministrator)
}
