package handlers

import (
	"net/http"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Field errors are returned as
// details so the form can show each message next to its field.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		var details any
		if fe, ok := domain.AsFieldErrors(err); ok {
			details = fe
		}
		respondError(c, http.StatusBadRequest, "validation_error", "validation failed", details)
	case domain.IsInternal(err):
		logrus.WithField("request_id", middleware.GetRequestID(c)).WithError(err).Error("request failed")
		respondError(c, http.StatusBadGateway, "submit_failed", err.Error(), nil)
	default:
		logrus.WithField("request_id", middleware.GetRequestID(c)).WithError(err).Error("request failed")
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
