package controller_portfolio

import (
	"fmt"
	"net/http"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/gin-gonic/gin"
)

type attachMediaRequest struct {
	MediaURLs []string                      `json:"mediaUrls"`
	Media     []portfolio_models.MediaInput `json:"media"`
}

func (r attachMediaRequest) inputs() []portfolio_models.MediaInput {
	inputs := make([]portfolio_models.MediaInput, 0, len(r.MediaURLs)+len(r.Media))
	for _, u := range r.MediaURLs {
		inputs = append(inputs, portfolio_models.MediaInput{URL: u})
	}
	return append(inputs, r.Media...)
}

type InstallationController struct {
	InstallationUsecase portfolio_interface.InstallationUsecase
}

func NewInstallationController(uc portfolio_interface.InstallationUsecase) *InstallationController {
	return &InstallationController{InstallationUsecase: uc}
}

func (c *InstallationController) GetInstallations(ctx *gin.Context) {
	installations, err := c.InstallationUsecase.GetInstallations(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to retrieve installations. Please try again later.")
		return
	}

	controller.ListResponse(ctx, "Installations retrieved successfully.", installations, len(installations))
}

func (c *InstallationController) GetInstallation(ctx *gin.Context) {
	installation, err := c.InstallationUsecase.GetInstallation(ctx.Request.Context(), ctx.Param("installId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to retrieve installation. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, "", installation)
}

func (c *InstallationController) CreateInstallation(ctx *gin.Context) {
	var input portfolio_models.InstallationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "Unable to upload installation due to missing information. Please review submitted fields.")
		return
	}

	installation, err := c.InstallationUsecase.CreateInstallation(ctx.Request.Context(), input)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to add new installation. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusCreated, "New installation successfully uploaded.", installation)
}

func (c *InstallationController) UpdateInstallation(ctx *gin.Context) {
	var patch portfolio_models.InstallationPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "No new installation details were submitted. Please review submitted fields.")
		return
	}

	installation, err := c.InstallationUsecase.UpdateInstallation(ctx.Request.Context(), ctx.Param("installId"), patch)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to update installation. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, "Installation details updated successfully", installation)
}

func (c *InstallationController) DeleteInstallation(ctx *gin.Context) {
	installation, err := c.InstallationUsecase.DeleteInstallation(ctx.Request.Context(), ctx.Param("installId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to remove installation. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, "Installation removed from the site.", installation)
}

func (c *InstallationController) AttachMedia(ctx *gin.Context) {
	var req attachMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "No media were sent to the server to upload.")
		return
	}

	inputs := req.inputs()
	installation, err := c.InstallationUsecase.AttachMedia(ctx.Request.Context(), ctx.Param("installId"), inputs)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to add submitted media to requested installation.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK,
		fmt.Sprintf("%d media uploaded to %s", len(inputs), installation.InstallDesc), installation)
}

func (c *InstallationController) DetachMedia(ctx *gin.Context) {
	media, err := c.InstallationUsecase.DetachMedia(ctx.Request.Context(), ctx.Param("mediaId"))
	if err != nil {
		controller.ErrorResponse(ctx, err, "Failed to remove media. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, "Media removed.", media)
}
