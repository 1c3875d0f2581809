// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/internal/validators"
	"github.com/MKhiriev/go-farol/models"
	"github.com/golang-jwt/jwt/v5"
)

type identityService struct {
	signKey     string
	algorithm   string
	tokenTTL    time.Duration
	adminDomain string
	validator   validators.Validator

	logger *logger.Logger
}

// NewIdentityService returns an IdentityService verifying HMAC tokens signed
// with cfg.SecretKey.
func NewIdentityService(cfg config.App, log *logger.Logger) (IdentityService, error) {
	if cfg.SecretKey == "" {
		return nil, ErrNoSigningKey
	}

	algorithm := cfg.TokenAlgorithm
	if algorithm == "" {
		algorithm = config.DefaultTokenAlgorithm
	}

	return &identityService{
		signKey:     cfg.SecretKey,
		algorithm:   algorithm,
		tokenTTL:    time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute,
		adminDomain: strings.ToLower(strings.TrimPrefix(cfg.AdminEmailDomain, "@")),
		validator:   validators.NewRequestValidator(),
		logger:      log,
	}, nil
}

func (s *identityService) Identify(ctx context.Context, token string) (models.Identity, error) {
	claims, err := utils.ParseIdentityToken(token, s.signKey, s.algorithm)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Identity{}, Unauthorized(app.MsgTokenIsExpiredOrInvalid, ErrTokenIsExpired)
		}
		return models.Identity{}, Unauthorized(app.MsgTokenIsExpiredOrInvalid, errors.Join(ErrInvalidToken, err))
	}

	return s.identityFor(claims.Email), nil
}

func (s *identityService) IssueToken(ctx context.Context, email string) (models.TokenResponse, error) {
	if err := s.validator.Validate(ctx, models.TokenRequest{Email: email}); err != nil {
		return models.TokenResponse{}, fromValidation(err, app.MsgInvalidEmail)
	}

	signed, err := utils.GenerateIdentityToken(email, s.tokenTTL, s.signKey, s.algorithm)
	if err != nil {
		return models.TokenResponse{}, err
	}

	logger.FromContext(ctx).Debug().Str("email", email).Dur("ttl", s.tokenTTL).Msg("identity token issued")

	return models.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *identityService) identityFor(email string) models.Identity {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.adminDomain != "" && strings.HasSuffix(email, "@"+s.adminDomain) {
		return models.Identity{Email: email, IsAdmin: true}
	}

	return models.Identity{Email: email, Client: models.ClientFromEmail(email)}
}
