// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is a verified caller.
type Identity struct {
	// Email is the address carried by the token.
	Email string `json:"email"`

	// IsAdmin is true when the email belongs to the admin domain; admins see
	// data of every client.
	IsAdmin bool `json:"is_admin"`

	// Client is the client name the caller is restricted to. Empty for
	// admins.
	Client string `json:"client,omitempty"`
}

// IdentityClaims is the JWT claim set issued and accepted by the service.
type IdentityClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// ClientFromEmail derives the client name from the first label of the email
// domain: "jane@acme.com.br" belongs to client "acme".
func ClientFromEmail(email string) string {
	_, domain, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}

	label, _, _ := strings.Cut(domain, ".")
	return strings.ToLower(label)
}
