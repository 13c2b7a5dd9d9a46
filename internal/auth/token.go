package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/taskhub-api/internal/apperrors"
)

// TokenIssuer signs and verifies HMAC access tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenIssuer(secret, issuer string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue signs the given claims with HS256, adding issuer and expiry.
func (i *TokenIssuer) Issue(claims map[string]any) (string, error) {
	now := time.Now()
	mc := jwt.MapClaims{
		"iss": i.issuer,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}
	for k, v := range claims {
		mc[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates signature, expiry, and issuer, returning the claims.
func (i *TokenIssuer) Parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return i.secret, nil
		},
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthorized("invalid token")
	}
	return claims, nil
}
