// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

const maxRequestIDLength = 128

// NewRequestID returns a fresh 128-bit correlation ID. UUIDv7 is preferred so
// IDs sort by creation time; v4 is used if the v7 generator fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidRequestID reports whether an inbound correlation ID may be trusted:
// 1 to 128 characters from [A-Za-z0-9._:-]. Anything else is replaced by a
// generated ID so log lines cannot be forged through the header.
func IsValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == ':', c == '-':
		default:
			return false
		}
	}

	return true
}
