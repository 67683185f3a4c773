package middleware

import (
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// defaultOrigin is the admin frontend's development address
const defaultOrigin = "http://localhost:3000"

// SecureCORS returns CORS middleware restricted to the given origins.
// With no origins configured it falls back to the local admin frontend.
// Wildcard origins are stripped in production regardless of input.
func SecureCORS(origins []string) echo.MiddlewareFunc {
	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" && os.Getenv("APP_ENV") == "production" {
			continue
		}
		cleaned = append(cleaned, origin)
	}
	if len(cleaned) == 0 {
		cleaned = []string{defaultOrigin}
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cleaned,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
