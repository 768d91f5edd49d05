package api

import (
	"net/http"
	"strings"

	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	ctxKeyCurrentUser = "current_user"
	ctxKeyCredential  = "credential"
)

// bearerToken extracts the credential from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requireAuthMiddleware rejects requests that do not carry a valid credential.
func requireAuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "Authentication required"})
			return
		}

		user, err := auth.VerifyCredential(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "Invalid or expired credential"})
			return
		}

		c.Set(ctxKeyCurrentUser, user)
		c.Set(ctxKeyCredential, token)
		c.Next()
	}
}

// optionalAuthMiddleware attaches the current user when a valid credential is
// present, but lets anonymous requests through.
func optionalAuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if user, err := auth.VerifyCredential(c.Request.Context(), token); err == nil {
				c.Set(ctxKeyCurrentUser, user)
				c.Set(ctxKeyCredential, token)
			}
		}
		c.Next()
	}
}

// currentUser returns the authenticated identity attached to the request,
// or nil for anonymous requests.
func currentUser(c *gin.Context) *models.CurrentUser {
	value, ok := c.Get(ctxKeyCurrentUser)
	if !ok {
		return nil
	}
	user, ok := value.(*models.CurrentUser)
	if !ok {
		return nil
	}
	return user
}
