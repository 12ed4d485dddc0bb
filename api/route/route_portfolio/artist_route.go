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

func NewArtistRouter(
	timeout time.Duration,
	db mongo.Database,
	publicGroup *gin.RouterGroup,
	protectedGroup *gin.RouterGroup,
) {
	repo := repository_portfolio.NewArtistRepository(db, domain.CollectionArtist)

	artistCtrl := controller_portfolio.NewArtistController(usecase_portfolio.NewArtistUsecase(repo, timeout))
	cvCtrl := controller_portfolio.NewCVController(usecase_portfolio.NewCVUsecase(repo, timeout))

	publicArtists := publicGroup.Group("/artists")
	{
		publicArtists.GET("", artistCtrl.GetArtists)
		publicArtists.GET("/:artistId", artistCtrl.GetArtist)
	}

	artists := protectedGroup.Group("/artists")
	{
		artists.POST("", artistCtrl.CreateArtist)
		artists.PUT("/:artistId/bio", artistCtrl.UpdateBio)
		artists.DELETE("/:artistId", artistCtrl.DeleteArtist)

		artists.POST("/:artistId/cv/:cvSubsection", cvCtrl.AddItem)
		artists.PUT("/:artistId/cv/:cvSubsection/:cvItemId", cvCtrl.UpdateItem)
		artists.DELETE("/:artistId/cv/:cvSubsection/:cvItemId", cvCtrl.DeleteItem)
	}
}
