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

func NewArtworkRouter(
	timeout time.Duration,
	db mongo.Database,
	publicGroup *gin.RouterGroup,
	protectedGroup *gin.RouterGroup,
) {
	artworkRepo := repository_portfolio.NewArtworkRepository(db, domain.CollectionArtwork)
	artistRepo := repository_portfolio.NewArtistRepository(db, domain.CollectionArtist)

	resolver := usecase_portfolio.NewMakerResolver(artistRepo)
	uc := usecase_portfolio.NewArtworkUsecase(artworkRepo, resolver, timeout)
	ctrl := controller_portfolio.NewArtworkController(uc)

	publicArtworks := publicGroup.Group("/artworks")
	{
		publicArtworks.GET("", ctrl.GetArtworks)
		publicArtworks.GET("/type/:artworkType", ctrl.GetArtworksByType)
		publicArtworks.GET("/:artworkId", ctrl.GetArtwork)
	}

	artworks := protectedGroup.Group("/artworks")
	{
		artworks.POST("", ctrl.CreateArtwork)
		artworks.PUT("/:artworkId", ctrl.UpdateArtwork)
		artworks.DELETE("/:artworkId", ctrl.DeleteArtwork)
	}
}
