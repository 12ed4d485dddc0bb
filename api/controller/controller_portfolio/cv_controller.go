package controller_portfolio

import (
	"fmt"
	"net/http"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_interface"
	"github.com/ddc-studio/portfolio-api/domain/domain_portfolio/portfolio_models"
	"github.com/gin-gonic/gin"
)

// CVController handles /artists/:artistId/cv/:cvSubsection. The request body
// is decoded into the item type of the subsection named in the path.
type CVController struct {
	CVUsecase portfolio_interface.CVUsecase
}

func NewCVController(uc portfolio_interface.CVUsecase) *CVController {
	return &CVController{CVUsecase: uc}
}

func (c *CVController) AddItem(ctx *gin.Context) {
	subsection := ctx.Param("cvSubsection")
	item, ok := bindCVItem(ctx, subsection)
	if !ok {
		return
	}

	artist, err := c.CVUsecase.AppendItem(ctx.Request.Context(), ctx.Param("artistId"), subsection, item)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to add CV item. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, fmt.Sprintf("%s updated successfully.", subsection), artist)
}

func (c *CVController) UpdateItem(ctx *gin.Context) {
	subsection := ctx.Param("cvSubsection")
	item, ok := bindCVItem(ctx, subsection)
	if !ok {
		return
	}

	artist, err := c.CVUsecase.ReplaceItem(
		ctx.Request.Context(),
		ctx.Param("artistId"),
		subsection,
		ctx.Param("cvItemId"),
		item,
	)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to update CV item. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, fmt.Sprintf("%s updated successfully.", subsection), artist)
}

func (c *CVController) DeleteItem(ctx *gin.Context) {
	subsection := ctx.Param("cvSubsection")

	artist, err := c.CVUsecase.RemoveItem(
		ctx.Request.Context(),
		ctx.Param("artistId"),
		subsection,
		ctx.Param("cvItemId"),
	)
	if err != nil {
		controller.ErrorResponse(ctx, err, "Unable to delete CV item. Please try again later.")
		return
	}

	controller.SuccessResponse(ctx, http.StatusOK, fmt.Sprintf("%s item removed.", subsection), artist)
}

// bindCVItem writes the error response itself and reports false on failure.
func bindCVItem(ctx *gin.Context, subsection string) (portfolio_models.CVItem, bool) {
	sub, err := portfolio_models.ParseSubsection(subsection)
	if err != nil {
		controller.ErrorResponse(ctx, err, "")
		return nil, false
	}

	item := sub.NewItem()
	if err := ctx.ShouldBindJSON(item); err != nil {
		controller.MessageResponse(ctx, http.StatusBadRequest, "Missing required information in the request.")
		return nil, false
	}
	return item, true
}
