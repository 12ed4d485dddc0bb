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

// NewImageRouter registers image routes. All of them mutate and require
// authentication.
func NewImageRouter(
	timeout time.Duration,
	db mongo.Database,
	tx domain.Transactor,
	protectedGroup *gin.RouterGroup,
) {
	imageRepo := repository_portfolio.NewArtworkImageRepository(db, domain.CollectionArtworkImage)
	artworkRepo := repository_portfolio.NewArtworkRepository(db, domain.CollectionArtwork)

	uc := usecase_portfolio.NewImageAttachmentUsecase(imageRepo, artworkRepo, tx, timeout)
	ctrl := controller_portfolio.NewImageController(uc)

	protectedGroup.POST("/artworks/:artworkId/images", ctrl.AttachImages)
	protectedGroup.DELETE("/artworks/:artworkId/images", ctrl.DetachAllImages)
	protectedGroup.DELETE("/images/:imgId", ctrl.DetachImage)
}
