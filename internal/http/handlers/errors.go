package handlers

import (
	"errors"
	"net/http"

	"innstay/internal/domain"
	"innstay/internal/http/middleware"
	"innstay/internal/utils"

	"github.com/gin-gonic/gin"
)

const internalErrorMsg = "Internal server error"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Status:    "error",
		Message:   message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Duplicate emails
// are reported as 400, matching what the storefront expects.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusBadRequest, "conflict", err.Error())
	case domain.IsInternal(err):
		var ie domain.InternalError
		errors.As(err, &ie)
		utils.Log.Errorw("storage failure",
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"op", ie.Msg,
			"error", ie.Err,
		)
		respondError(c, http.StatusInternalServerError, "internal_error", internalErrorMsg)
	default:
		utils.Log.Errorw("request failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", err,
		)
		respondError(c, http.StatusInternalServerError, "internal_error", internalErrorMsg)
	}
}
