package controller_auth

import (
	"errors"
	"net/http"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_models"
	"github.com/gin-gonic/gin"
)

type AdministratorController struct {
	AdministratorUsecase auth_interface.AdministratorUsecase
}

func NewAdministratorController(uc auth_interface.AdministratorUsecase) *AdministratorController {
	return &AdministratorController{AdministratorUsecase: uc}
}

func (c *AdministratorController) Login(ctx *gin.Context) {
	var req auth_models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "Login and password are required.")
		return
	}

	resp, err := c.AdministratorUsecase.Login(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth_models.ErrInvalidCredentials) {
			controller.MessageResponse(ctx, http.StatusUnauthorized, domain.MessageOf(err, "Invalid login or password."))
			return
		}
		controller.ErrorResponse(ctx, err, "Unable to log in. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, "Logged in.", resp)
}

func (c *AdministratorController) CreateAdministrator(ctx *gin.Context) {
	var input auth_models.AdministratorInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "Unable to read administrator details. Please review submitted fields.")
		return
	}

	admin, err := c.AdministratorUsecase.CreateAdministrator(ctx.Request.Context(), input)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to create administrator. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusCreated, "Administrator created.", admin)
}
