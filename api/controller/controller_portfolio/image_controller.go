package controller_portfolio

import (
	"fmt"
	"net/http"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/gin-gonic/gin"
)

// attachImagesRequest accepts bare URLs, full image inputs, or both. Bare
// URLs come first.
type attachImagesRequest struct {
	ImageURLs []string                      `json:"imageUrls"`
	Images    []portfolio_models.ImageInput `json:"images"`
}

func (r attachImagesRequest) inputs() []portfolio_models.ImageInput {
	inputs := make([]portfolio_models.ImageInput, 0, len(r.ImageURLs)+len(r.Images))
	for _, u := range r.ImageURLs {
		inputs = append(inputs, portfolio_models.ImageInput{URL: u})
	}
	return append(inputs, r.Images...)
}

type ImageController struct {
	ImageUsecase portfolio_interface.ImageAttachmentUsecase
}

func NewImageController(uc portfolio_interface.ImageAttachmentUsecase) *ImageController {
	return &ImageController{ImageUsecase: uc}
}

func (c *ImageController) AttachImages(ctx *gin.Context) {
	var req attachImagesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "No images were sent to the server to upload.")
		return
	}

	inputs := req.inputs()
	artwork, err := c.ImageUsecase.AttachImages(ctx.Request.Context(), ctx.Param("artworkId"), inputs)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to add submitted images to requested artwork.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK,
		fmt.Sprintf("%d images uploaded to %s", len(inputs), artwork.Title), artwork)
}

func (c *ImageController) DetachAllImages(ctx *gin.Context) {
	count, err := c.ImageUsecase.DetachAllImages(ctx.Request.Context(), ctx.Param("artworkId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to remove images. Please try again later.")
		return
	}

	controller.ListResponse(ctx, fmt.Sprintf("%d images removed.", count), nil, int(count))
}

func (c *ImageController) DetachImage(ctx *gin.Context) {
	image, err := c.ImageUsecase.DetachImage(ctx.Request.Context(), ctx.Param("imgId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to remove image. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, "Image removed.", image)
}
