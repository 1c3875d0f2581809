// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"net/url"

	"golang.org/x/crypto/blake2b"
)

const redacted = "[REDACTED]"

// Fingerprint returns a short BLAKE2b digest of s so a credential can be
// told apart in logs without being revealed. Empty input yields "".
func Fingerprint(s string) string {
	if s == "" {
		return ""
	}

	sum := blake2b.Sum256([]byte(s))
	return hex.EncodeToString(sum[:6])
}

// Redacted returns a copy of cfg safe to log: secrets are masked and the
// upstream credential is replaced by its fingerprint.
func (cfg *StructuredConfig) Redacted() StructuredConfig {
	out := *cfg
	out.CORS.AllowedOrigins = append([]string(nil), cfg.CORS.AllowedOrigins...)
	out.Server.TrustedProxies = append([]string(nil), cfg.Server.TrustedProxies...)

	if out.App.SecretKey != "" {
		out.App.SecretKey = redacted
	}
	if out.Upstream.PAT != "" {
		out.Upstream.PAT = redacted + " " + Fingerprint(cfg.Upstream.PAT)
	}
	if out.Upstream.AuthBasic != "" {
		out.Upstream.AuthBasic = redacted + " " + Fingerprint(cfg.Upstream.AuthBasic)
	}

	out.Storage.DB.DSN = redactDSN(cfg.Storage.DB.DSN)

	return out
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); !ok {
		return dsn
	}

	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
