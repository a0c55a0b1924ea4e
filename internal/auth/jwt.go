// Package auth validates access tokens issued by the external identity
// service. This backend never issues or refreshes tokens; it only verifies
// the HS256 signature and extracts the subject user ID, which downstream
// layers treat as authoritative.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenValidator parses and validates HS256 access tokens.
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator creates a validator for tokens signed with the shared
// secret. secret must be at least 32 characters for HS256 security.
func NewTokenValidator(secret, issuer string) *TokenValidator {
	return &TokenValidator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// ValidateToken parses and validates a JWT access token.
// Returns the user ID carried in the subject claim.
func (v *TokenValidator) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != v.issuer {
		return uuid.Nil, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return userID, nil
}
