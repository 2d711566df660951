package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avoandes/avomarket/internal/domain/model"
	pkgAuth "github.com/avoandes/avomarket/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for the authenticated account id.
	UserIDContextKey = "userID"
	// RoleContextKey is a gin context key for the authenticated account role.
	RoleContextKey = "userRole"

	authCookieName = "avomarket_token"
)

// TokenParser resolves a session token into an account identity.
type TokenParser interface {
	ParseToken(token string) (string, model.Role, error)
}

// AuthRequired ensures the caller presented a valid session token before the
// handler runs, and stores the identity on the gin context.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, role, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Set(RoleContextKey, role)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role does not match. Seed
// vendors and buyers share numeric ids, so role gating happens off the token
// rather than a store lookup.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(RoleContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if got, _ := val.(model.Role); got != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
