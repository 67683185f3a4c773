// Package auth provides admin credential checking and JWT token
// issuing and validation for the back-office API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
)

// DefaultTokenTTL is how long issued tokens stay valid
const DefaultTokenTTL = 24 * time.Hour

const tokenIssuer = "kejing-backend"

// Identity is the authenticated principal attached to admin requests
type Identity struct {
	Username string `json:"username"`
}

// TokenValidator checks a bearer token and returns the subject username.
// The production implementation verifies JWT signatures; tests may
// inject a static validator instead.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// TokenIssuer signs JWTs for authenticated admins
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for the given username and returns the token
// string and its expiry time.
func (i *TokenIssuer) Issue(username string) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// jwtValidator verifies HS256 tokens issued by TokenIssuer
type jwtValidator struct {
	secret []byte
	now    func() time.Time
}

// NewJWTValidator creates the production TokenValidator for the given
// signing secret.
func NewJWTValidator(secret string) TokenValidator {
	return &jwtValidator{secret: []byte(secret), now: time.Now}
}

// Validate parses and verifies a token, returning the subject username
func (v *jwtValidator) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// StaticValidator accepts every token and always reports the configured
// username. It exists for handler tests; it is never wired by default
// and must be injected explicitly.
type StaticValidator struct {
	Username string
}

// Validate always succeeds with the configured username
func (v *StaticValidator) Validate(_ string) (string, error) {
	return v.Username, nil
}

// Authenticator checks the single admin credential pair. The password
// is bcrypt-hashed at construction so the plaintext never outlives
// startup.
type Authenticator struct {
	username     string
	passwordHash []byte
	issuer       *TokenIssuer
}

// NewAuthenticator creates an Authenticator for the configured admin
// account.
func NewAuthenticator(username, password string, issuer *TokenIssuer) (*Authenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &Authenticator{
		username:     username,
		passwordHash: hash,
		issuer:       issuer,
	}, nil
}

// Authenticate verifies the credential pair and issues a token on
// success.
func (a *Authenticator) Authenticate(username, password string) (string, time.Time, error) {
	if username != a.username {
		// Burn a comparison anyway so unknown usernames take as long
		// as wrong passwords.
		bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return a.issuer.Issue(username)
}
