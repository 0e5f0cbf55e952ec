package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/arganshop/backend/internal/infrastructure/auth"
	"github.com/arganshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Gin context keys set by AdminAuth
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUsernameKey = "jwt_username"
)

// AdminAuth guards admin routes. It requires a valid bearer token issued by
// the login endpoint and an admin role claim.
func AdminAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authorization header required")
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Authorization header must be a bearer token")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrCodeTokenExpired, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid token")
			return
		}

		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "Admin role required", GetRequestID(c)))
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUsernameKey, claims.Username)
		c.Next()
	}
}

// GetJWTUsername returns the authenticated username, or ""
func GetJWTUsername(c *gin.Context) string {
	return c.GetString(JWTUsernameKey)
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}
