package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kejingzs/kejing-backend/internal/auth"
	apperrors "github.com/kejingzs/kejing-backend/internal/errors"
	"github.com/kejingzs/kejing-backend/internal/logger"
	"github.com/labstack/echo/v4"
)

// UserContextKey is the echo context key holding the authenticated
// admin username.
const UserContextKey = "auth_username"

// JWTAuth validates the bearer token on every request using the
// injected validator and attaches the authenticated username to the
// context. There is no environment-based bypass; tests swap in a
// permissive validator when they need one.
func JWTAuth(validator auth.TokenValidator, secLog *logger.SecurityLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				if secLog != nil {
					secLog.AuthFailure(c.RealIP(), c.Path(), "missing authorization header")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error": "missing authorization header",
					"code":  apperrors.CodeUnauthorized,
				})
			}

			// Extract token from "Bearer <token>" format
			token := strings.TrimPrefix(authHeader, "Bearer ")
			token = strings.TrimSpace(token)
			if token == "" || token == authHeader {
				if secLog != nil {
					secLog.AuthFailure(c.RealIP(), c.Path(), "malformed authorization header")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error": "malformed authorization header",
					"code":  apperrors.CodeUnauthorized,
				})
			}

			username, err := validator.Validate(token)
			if err != nil {
				code := apperrors.CodeUnauthorized
				reason := "invalid token"
				if errors.Is(err, auth.ErrTokenExpired) {
					code = apperrors.CodeTokenExpired
					reason = "token expired"
				}
				if secLog != nil {
					secLog.AuthFailure(c.RealIP(), c.Path(), reason)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error": reason,
					"code":  code,
				})
			}

			c.Set(UserContextKey, username)
			return next(c)
		}
	}
}
