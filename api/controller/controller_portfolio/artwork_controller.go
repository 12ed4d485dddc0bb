package controller_portfolio

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/gin-gonic/gin"
)

type ArtworkController struct {
	ArtworkUsecase portfolio_interface.ArtworkUsecase
}

func NewArtworkController(uc portfolio_interface.ArtworkUsecase) *ArtworkController {
	return &ArtworkController{ArtworkUsecase: uc}
}

// GetArtworks accepts repeated sort=field:order query parameters.
func (c *ArtworkController) GetArtworks(ctx *gin.Context) {
	sorts := ctx.QueryArray("sort")
	sortOrders := make([]domain.SortOrder, 0, len(sorts))
	for _, s := range sorts {
		field, order, found := strings.Cut(s, ":")
		if !found {
			order = "asc"
		}
		sortOrders = append(sortOrders, domain.SortOrder{
			Sort:  field,
			Order: order,
		})
	}

	artworks, err := c.ArtworkUsecase.GetArtworks(ctx.Request.Context(), sortOrders)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to retrieve artworks. Please try again later.")
		return
	}

	controller.ListResponse(ctx, "Artworks retrieved successfully.", artworks, len(artworks))
}

func (c *ArtworkController) GetArtworksByType(ctx *gin.Context) {
	artworks, err := c.ArtworkUsecase.GetArtworksByType(ctx.Request.Context(), ctx.Param("artworkType"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to retrieve artworks. Please try again later.")
		return
	}

	controller.ListResponse(ctx, "Artworks retrieved successfully.", artworks, len(artworks))
}

func (c *ArtworkController) GetArtwork(ctx *gin.Context) {
	artwork, err := c.ArtworkUsecase.GetArtwork(ctx.Request.Context(), ctx.Param("artworkId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to retrieve requested artwork. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, "", artwork)
}

func (c *ArtworkController) CreateArtwork(ctx *gin.Context) {
	var draft portfolio_models.ArtworkDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "Unable to upload artwork due to missing information. Please review submitted fields.")
		return
	}

	artwork, err := c.ArtworkUsecase.CreateArtwork(ctx.Request.Context(), draft)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to add artwork. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusCreated, fmt.Sprintf("%s successfully uploaded.", artwork.Title), artwork)
}

func (c *ArtworkController) UpdateArtwork(ctx *gin.Context) {
	var patch portfolio_models.ArtworkPatchDraft
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "No information was provided.")
		return
	}

	artwork, err := c.ArtworkUsecase.UpdateArtwork(ctx.Request.Context(), ctx.Param("artworkId"), patch)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to update artwork. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, fmt.Sprintf("%s details updated", artwork.Title), artwork)
}

func (c *ArtworkController) DeleteArtwork(ctx *gin.Context) {
	artwork, err := c.ArtworkUsecase.DeleteArtwork(ctx.Request.Context(), ctx.Param("artworkId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to remove requested artwork from the site.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, fmt.Sprintf("%s removed from the site.", artwork.Title), artwork)
}
