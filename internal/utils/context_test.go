// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-farol/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "testKey", key.String())
	assert.Equal(t, "requestContext", RequestContextCtxKey.String())
}

func TestRequestContextFrom_Success(t *testing.T) {
	rc := &models.RequestContext{ID: "req-1", ClientKey: "ip:10.0.0.1"}
	ctx := WithRequestContext(context.Background(), rc)

	got, ok := RequestContextFrom(ctx)

	require.True(t, ok)
	assert.Same(t, rc, got)
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
}

func TestRequestContextFrom_Missing(t *testing.T) {
	got, ok := RequestContextFrom(context.Background())

	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestRequestContextFrom_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestContextCtxKey, "not a request context")

	_, ok := RequestContextFrom(ctx)

	assert.False(t, ok)
}

func TestRequestContextFrom_TypedNil(t *testing.T) {
	var rc *models.RequestContext
	ctx := WithRequestContext(context.Background(), rc)

	_, ok := RequestContextFrom(ctx)

	assert.False(t, ok)
}
