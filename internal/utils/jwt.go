// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-farol/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the identity token helpers.
var (
	ErrInvalidTokenParams = errors.New("invalid params for identity token")
	ErrEmptyEmailClaim    = errors.New("token has no email claim")
	ErrInvalidBearer      = errors.New("invalid authorization header")
)

// GenerateIdentityToken creates a signed HMAC JWT carrying email.
//
// The token includes:
//   - Subject   (sub): email
//   - Email     (email): email
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus ttl
//
// algorithm is one of HS256, HS384 or HS512.
//
// Example usage:
//
//	signed, err := utils.GenerateIdentityToken("jane@acme.com", 30*time.Minute, key, "HS256")
func GenerateIdentityToken(email string, ttl time.Duration, signKey, algorithm string) (string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if email == "" || ttl <= 0 || signKey == "" || method == nil {
		return "", ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing identity token: %w", err)
	}

	return signed, nil
}

// ParseIdentityToken verifies the signature and expiry of tokenString and
// returns its claims. Only algorithm is accepted, which rules out "none" and
// algorithm-confusion tokens.
//
// Example usage:
//
//	claims, err := utils.ParseIdentityToken(raw, key, "HS256")
//	if err != nil {
//	    // treat the caller as anonymous
//	}
func ParseIdentityToken(tokenString, signKey, algorithm string) (*models.IdentityClaims, error) {
	claims := &models.IdentityClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{algorithm}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Email == "" {
		return nil, ErrEmptyEmailClaim
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidBearer
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidBearer
	}

	return token, nil
}
