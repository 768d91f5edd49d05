package api

import (
	"errors"
	"net/http"

	"github.com/content-comments-api/internal/apperr"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// errorBody is the JSON envelope returned for every failed request.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError translates an application error into an HTTP response.
// Unknown errors are reported as 500 without leaking internals.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, errorBody{Error: "Internal server error"})
		return
	}

	status := statusForKind(appErr.Kind)
	if status >= 500 {
		log.Error().Err(appErr).Str("path", c.Request.URL.Path).Msg("Backend error")
		// Hide backend details from clients
		c.JSON(status, errorBody{Error: "Upstream request failed"})
		return
	}

	c.JSON(status, errorBody{Error: appErr.Message, Fields: appErr.Fields})
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.ValidationFailed:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Backend:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
