package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/lifebalance-backend/internal/apperr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    apperr.Code(err),
		},
	})
}

// respondServiceError maps the error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var authErr *apperr.AuthError
	switch {
	case errors.As(err, &authErr):
		RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, apperr.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, apperr.ErrNotFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, apperr.ErrValidation):
		RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, apperr.ErrOffline):
		RespondError(c, http.StatusServiceUnavailable, err)
	default:
		RespondError(c, http.StatusInternalServerError, err)
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
