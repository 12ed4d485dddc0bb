package controller

import (
	"net/http"
	"sync/atomic"

	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/util/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the envelope of every API answer.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

var exposeErrors atomic.Bool

// SetExposeErrors controls whether error responses carry the underlying
// error text. Only development should turn it on.
func SetExposeErrors(expose bool) {
	exposeErrors.Store(expose)
}

func SuccessResponse(ctx *gin.Context, status int, message string, data interface{}) {
	ctx.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListResponse answers 200 with data and its element count.
func ListResponse(ctx *gin.Context, message string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

// ErrorResponse maps err to a status code and writes the failure envelope.
// fallback is shown when err carries no caller-facing message.
func ErrorResponse(ctx *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.ErrorWithStack(err)
	} else {
		log.Debug().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg("request rejected")
	}

	resp := Response{
		Success: false,
		Message: domain.MessageOf(err, fallback),
	}
	if exposeErrors.Load() && err != nil {
		resp.Error = err.Error()
	}
	ctx.JSON(status, resp)
}

// MessageResponse writes a failure envelope that has no underlying error.
func MessageResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

func StatusOf(err error) int {
	switch domain.KindOf(err) {
	case domain.ErrorKindValidation:
		return http.StatusBadRequest
	case domain.ErrorKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
