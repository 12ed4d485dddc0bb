package tokenutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/ddc-studio/portfolio-api/domain/domain_auth/auth_models"
	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// CreateAccessToken signs an HS256 token for admin valid for expiry hours.
func CreateAccessToken(admin *auth_models.Administrator, secret string, expiry int) (string, error) {
	now := time.Now()
	claims := &auth_models.JwtCustomClaims{
		Username: admin.Username,
		ID:       admin.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiry) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(tokenString string, secret string) (*auth_models.JwtCustomClaims, error) {
	claims := &auth_models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
