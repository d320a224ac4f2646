package handlers

import (
	"errors"
	"net/http"

	"github.com/epeers/rsiv/internal/export"
	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// statusFor maps a service or boundary error to an HTTP status and error code
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrOutOfRange),
		errors.Is(err, export.ErrUnknownFormat):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, ErrAnalysisNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(c *gin.Context, err error) {
	status, code := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
	}
	c.JSON(status, models.ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}
