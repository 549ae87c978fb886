package infrastructure

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every way a token can fail validation: bad
// signature, undecodable payload, missing claims, or elapsed expiry.
// Callers are not told which.
var ErrInvalidToken = errors.New("invalid or expired token")

// JWTService issues and validates HS256 session tokens. The payload
// carries the subject email and an absolute expiry in unix seconds; the
// expiry lives in a custom "expires" claim and is checked explicitly after
// decode rather than relying on the library's exp handling.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GenerateToken signs a token for the given email, expiring after the
// configured duration.
func (j *JWTService) GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email":   email,
		"expires": float64(time.Now().Add(j.expiry).Unix()),
		"jti":     uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateToken verifies the signature and expiry of a token and returns
// the subject email. Any failure maps to ErrInvalidToken; the expiry is
// re-checked against the clock even when the token parses cleanly.
func (j *JWTService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok {
		return "", ErrInvalidToken
	}

	expires, ok := claims["expires"].(float64)
	if !ok || expires <= float64(time.Now().Unix()) {
		return "", ErrInvalidToken
	}

	return email, nil
}
