// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RequestContext is the per-request state shared by the pipeline stages.
// It is created by the identity stage and owned by a single request; no
// other goroutine reads or writes it.
type RequestContext struct {
	// ID is the correlation identifier. It never changes once assigned.
	ID string `json:"id"`

	// ClientKey identifies the caller for rate limiting, e.g.
	// "user:alice@example.com" or "ip:10.0.0.1".
	ClientKey string `json:"client_key"`

	// StartedAt is when the identity stage saw the request.
	StartedAt time.Time `json:"started_at"`

	// Identity is the verified caller, if a valid token was presented.
	Identity *Identity `json:"identity,omitempty"`

	// Annotations accumulates short notes from each stage, in order.
	Annotations []Annotation `json:"annotations"`

	// ErrorKind is set by the translation stage when the response is an
	// error.
	ErrorKind string `json:"error_kind,omitempty"`
}

// Annotation is one note recorded by a pipeline stage.
type Annotation struct {
	Stage string `json:"stage"`
	Note  string `json:"note"`
}

// Annotate appends a note for stage.
func (rc *RequestContext) Annotate(stage, note string) {
	rc.Annotations = append(rc.Annotations, Annotation{Stage: stage, Note: note})
}
