package handler

import (
	"errors"
	"time"

	"github.com/arganshop/backend/internal/infrastructure/auth"
	"github.com/arganshop/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles the admin login endpoint
type AuthHandler struct {
	BaseHandler
	verifier   *auth.CredentialVerifier
	jwtService *auth.JWTService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(verifier *auth.CredentialVerifier, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login verifies admin credentials and issues a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.verifier.Verify(req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.L(c.Request.Context()).Warn("failed login attempt",
				zap.String("username", req.Username),
				zap.String("client_ip", c.ClientIP()))
			h.Unauthorized(c, "Invalid username or password")
			return
		}
		h.HandleError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
	})
}
