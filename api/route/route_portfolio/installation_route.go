package route_portfolio

import (
	"time"

	"github.com/ddc-studio/portfolio-api/api/controller/controller_portfolio"
	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/ddc-studio/portfolio-api/repository/repository_portfolio"
	"github.com/ddc-studio/portfolio-api/usecase/usecase_portfolio"
	"github.com/gin-gonic/gin"
)

func NewInstallationRouter(
	timeout time.Duration,
	db mongo.Database,
	tx domain.Transactor,
	publicGroup *gin.RouterGroup,
	protectedGroup *gin.RouterGroup,
) {
	installationRepo := repository_portfolio.NewInstallationRepository(db, domain.CollectionInstallation)
	mediaRepo := repository_portfolio.NewInstallationMediaRepository(db, domain.CollectionInstallationMedia)

	uc := usecase_portfolio.NewInstallationUsecase(installationRepo, mediaRepo, tx, timeout)
	ctrl := controller_portfolio.NewInstallationController(uc)

	publicInstallations := publicGroup.Group("/installations")
	{
		publicInstallations.GET("", ctrl.GetInstallations)
		publicInstallations.GET("/:installId", ctrl.GetInstallation)
	}

	installations := protectedGroup.Group("/installations")
	{
		installations.POST("", ctrl.CreateInstallation)
		installations.PUT("/:installId", ctrl.UpdateInstallation)
		installations.DELETE("/:installId", ctrl.DeleteInstallation)
		installations.POST("/:installId/media", ctrl.AttachMedia)
	}

	protectedGroup.DELETE("/installation-media/:mediaId", ctrl.DetachMedia)
}
