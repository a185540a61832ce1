package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/httperr"
	"taskboard/internal/token"
)

// Context keys set by JWTAuthMiddleware for downstream handlers.
const (
	UserIDKey = "user_id"
	EmailKey  = "email"
)

// JWTAuthMiddleware guards a route group with bearer-token auth: a missing
// header or token is 401, a token that fails verification is 403. On
// success the verified identity is attached to the gin context. The store
// is never consulted here, so an already-issued access token stays valid
// until it expires even after logout.
func JWTAuthMiddleware(tokenService token.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Respond(c, httperr.Unauthorized("authorization header required"))
			c.Abort()
			return
		}

		// Expected format: "Bearer <token>".
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			httperr.Respond(c, httperr.Unauthorized("invalid authorization header format"))
			c.Abort()
			return
		}

		userID, email, err := tokenService.VerifyAccessToken(parts[1])
		if err != nil {
			httperr.Respond(c, httperr.Forbidden("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(EmailKey, email)
		c.Next()
	}
}
