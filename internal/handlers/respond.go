package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/repository"
)

// Response is the uniform API envelope.
type Response struct {
	Code       int                    `json:"code"`
	Status     string                 `json:"status"`
	Message    string                 `json:"message"`
	Data       any                    `json:"data"`
	Pagination *repository.Pagination `json:"pagination,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Response{
		Code:    status,
		Status:  http.StatusText(status),
		Message: "Success",
		Data:    data,
	})
}

func respondPage(c *gin.Context, data any, pg repository.Pagination) {
	c.JSON(http.StatusOK, Response{
		Code:       http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		Message:    "Success",
		Data:       data,
		Pagination: &pg,
	})
}

// respondError maps error kinds to HTTP status codes. Unknown errors are
// treated as internal failures without leaking detail.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Kind {
		case apperrors.KindNotFound:
			status = http.StatusNotFound
		case apperrors.KindConflict:
			status = http.StatusConflict
		case apperrors.KindUnauthorized:
			status = http.StatusUnauthorized
		case apperrors.KindValidation:
			status = http.StatusBadRequest
		default:
			status = http.StatusInternalServerError
			message = "Internal server error"
		}
	}

	_ = c.Error(err)
	c.JSON(status, Response{
		Code:    status,
		Status:  http.StatusText(status),
		Message: message,
	})
}
