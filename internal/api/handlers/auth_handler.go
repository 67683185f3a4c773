package handlers

import (
	"errors"
	"time"

	apimiddleware "github.com/kejingzs/kejing-backend/internal/api/middleware"
	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/auth"
	"github.com/kejingzs/kejing-backend/internal/logger"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles admin authentication HTTP requests
type AuthHandler struct {
	authenticator *auth.Authenticator
	secLog        *logger.SecurityLogger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authenticator *auth.Authenticator, secLog *logger.SecurityLogger) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, secLog: secLog}
}

// TokenRequest represents the request body for POST /api/auth/token
type TokenRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse carries an issued token and its expiry
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Token handles POST /api/auth/token
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.UnprocessableEntity(c, "username and password are required")
	}

	token, expiresAt, err := h.authenticator.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			if h.secLog != nil {
				h.secLog.AuthFailure(c.RealIP(), c.Path(), "invalid credentials")
			}
			return response.Unauthorized(c, "invalid username or password")
		}
		return response.InternalError(c, "failed to issue token")
	}

	return response.Success(c, TokenResponse{Token: token, ExpiresAt: expiresAt})
}

// Me handles GET /api/auth/me and returns the authenticated identity
func (h *AuthHandler) Me(c echo.Context) error {
	username, _ := c.Get(apimiddleware.UserContextKey).(string)
	if username == "" {
		return response.Unauthorized(c, "not authenticated")
	}

	return response.Success(c, auth.Identity{Username: username})
}
