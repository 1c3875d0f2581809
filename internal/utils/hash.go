package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// PayloadHasher computes keyed HMAC-SHA256 digests of webhook payloads. It
// is used to derive a stable event ID for deliveries that carry none, so a
// redelivered payload maps to the same ID.
//
// Hash instances are pooled; a PayloadHasher is safe for concurrent use.
type PayloadHasher struct {
	pool sync.Pool
}

// NewPayloadHasher returns a PayloadHasher keyed with hashKey.
//
// Example usage:
//
//	hasher := utils.NewPayloadHasher(cfg.App.SecretKey)
//	id := hasher.Sum(body)
func NewPayloadHasher(hashKey string) *PayloadHasher {
	key := []byte(hashKey)
	return &PayloadHasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the hex-encoded HMAC-SHA256 digest of data.
func (p *PayloadHasher) Sum(data []byte) string {
	h := p.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	p.pool.Put(h)

	return hex.EncodeToString(sum)
}
