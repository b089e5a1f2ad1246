package middleware

import (
	"context"
	"net/http"

	"innstay/internal/domain"
	"innstay/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const authUserKey = "authUser"

// Authenticator resolves the caller from an Authorization header.
type Authenticator interface {
	Authenticate(ctx context.Context, header string, roles ...domain.Role) (models.User, error)
}

// RequireAuth rejects requests without a valid bearer token for one of roles.
// With no roles any active user passes.
func RequireAuth(auth Authenticator, roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"), roles...)
		if err != nil {
			if !domain.IsUnauthorized(err) {
				_ = c.Error(err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":     "error",
				"message":    "Unauthorized",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(authUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
