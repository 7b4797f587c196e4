package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/start94/-Code-of-Babel/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses. Internal
// error detail never reaches the caller; messages here are the full
// client-facing surface.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrEmptyText):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "EMPTY_TEXT",
			Message:    "text must not be empty",
		}
	case errors.Is(err, usecase.ErrInference):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INFERENCE_ERROR",
			Message:    "internal error during language recognition",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleValidationError handles a request body that failed binding
// (missing field, wrong JSON type, malformed JSON).
func HandleValidationError(c *gin.Context, message string) {
	respondError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", message)
}
