package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// claimsKey is the gin context key the middleware stores verified claims under
const claimsKey = "auth_claims"

// RequireAuth validates the Authorization header and injects the verified
// claims into the request context.
//
// A missing header is 401; a present but unusable credential (bad scheme, bad
// signature, malformed, or expired token) is 403. The asymmetry is part of
// the API contract. No database lookup happens here: the signature is
// trusted, so a token outlives even a password change until it expires.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing authorization token",
			})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "invalid authorization header",
			})
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": msg,
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims extracts the verified claims the middleware stored on the context
func GetClaims(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}
