package controller_portfolio

import (
	"fmt"
	"net/http"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/gin-gonic/gin"
)

type ArtistController struct {
	ArtistUsecase portfolio_interface.ArtistUsecase
}

func NewArtistController(uc portfolio_interface.ArtistUsecase) *ArtistController {
	return &ArtistController{ArtistUsecase: uc}
}

func (c *ArtistController) GetArtists(ctx *gin.Context) {
	artists, err := c.ArtistUsecase.GetArtists(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to retrieve info on artists. Please try again later.")
		return
	}

	controller.ListResponse(ctx, "Artists retrieved successfully.", artists, len(artists))
}

func (c *ArtistController) GetArtist(ctx *gin.Context) {
	artist, err := c.ArtistUsecase.GetArtist(ctx.Request.Context(), ctx.Param("artistId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to retrieve artist. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, "", artist)
}

func (c *ArtistController) CreateArtist(ctx *gin.Context) {
	var input portfolio_models.ArtistInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "Unable to read artist details. Please review submitted fields.")
		return
	}

	artist, err := c.ArtistUsecase.CreateArtist(ctx.Request.Context(), input)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to create artist. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusCreated, fmt.Sprintf("%s successfully added.", artist.Name), artist)
}

func (c *ArtistController) UpdateBio(ctx *gin.Context) {
	var body struct {
		Bio string `json:"bio"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "No new bio was submitted. Please review submitted fields.")
		return
	}

	artist, err := c.ArtistUsecase.UpdateBio(ctx.Request.Context(), ctx.Param("artistId"), body.Bio)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to update requested artist's bio. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, fmt.Sprintf("%s's bio updated", artist.Name), artist)
}

func (c *ArtistController) DeleteArtist(ctx *gin.Context) {
	artist, err := c.ArtistUsecase.DeleteArtist(ctx.Request.Context(), ctx.Param("artistId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to delete artist. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, fmt.Sprintf("%s removed from the site.", artist.Name), artist)
}
