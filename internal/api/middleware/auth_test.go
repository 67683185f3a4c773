package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kejingzs/kejing-backend/internal/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret-32-characters!"

func runJWTAuth(t *testing.T, validator auth.TokenValidator, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(validator, nil)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestJWTAuth_ValidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer(testSecret, time.Hour)
	token, _, err := issuer.Issue("admin")
	require.NoError(t, err)

	rec := runJWTAuth(t, auth.NewJWTValidator(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuth_SetsUsernameInContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	handler := JWTAuth(&auth.StaticValidator{Username: "admin"}, nil)(func(c echo.Context) error {
		got = c.Get(UserContextKey).(string)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "admin", got)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec := runJWTAuth(t, auth.NewJWTValidator(testSecret), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	rec := runJWTAuth(t, auth.NewJWTValidator(testSecret), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	rec := runJWTAuth(t, auth.NewJWTValidator(testSecret), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	// Sign a token that expired an hour ago
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := runJWTAuth(t, auth.NewJWTValidator(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}
