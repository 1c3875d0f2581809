// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/metrics"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
)

// dispatchFunc is a route handler. A returned error is written by the
// translation stage; the handler writes only successful responses.
type dispatchFunc func(w http.ResponseWriter, r *http.Request) error

type errorSlotKey struct{}

// errorSlot holds the error reported by the dispatcher of one request.
type errorSlot struct {
	err error
}

// dispatch adapts fn into an [http.HandlerFunc]. A returned error goes to the
// slot installed by withTranslation; outside the pipeline it is written
// directly.
func (h *Handler) dispatch(fn dispatchFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		if slot, ok := r.Context().Value(errorSlotKey{}).(*errorSlot); ok {
			slot.err = err
			return
		}

		h.writeError(w, r, err)
	}
}

// withTranslation installs the error slot, recovers panics and, once the
// downstream handler returns, writes the payload for a reported error.
func (h *Handler) withTranslation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slot := &errorSlot{}
		r = r.WithContext(context.WithValue(r.Context(), errorSlotKey{}, slot))
		tw := &responseWriter{ResponseWriter: w}

		h.serveRecovering(tw, r, next, slot)

		if slot.err == nil {
			return
		}

		if tw.wroteHeader {
			logger.FromRequest(r).Err(slot.err).
				Int("status", tw.status).
				Msg("error reported after response was started")
			return
		}

		h.writeError(tw, r, slot.err)
	})
}

func (h *Handler) serveRecovering(w http.ResponseWriter, r *http.Request, next http.Handler, slot *errorSlot) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}

		metrics.PanicRecoveries.Inc()
		logger.FromRequest(r).Error().
			Interface("panic", rec).
			Bytes("stack", debug.Stack()).
			Msg("handler panicked")
		slot.err = fmt.Errorf("%w: %v", ErrPanicRecovered, rec)
	}()

	next.ServeHTTP(w, r)
}

// writeError writes the structured payload for err. Details of internal
// errors are logged and never sent.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := describeError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("error_code", body.ErrorCode).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("error_code", body.ErrorCode).Msg("request rejected")
	}

	h.writeErrorResponse(w, r, status, body)
}

// writeErrorResponse is the single writer of error payloads. It fills the
// correlation ID and records the error kind on the request context.
func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, body models.ErrorResponse) {
	body.CorrelationID = utils.RequestIDFrom(r.Context())

	if rc, ok := utils.RequestContextFrom(r.Context()); ok {
		rc.ErrorKind = body.ErrorCode
		rc.Annotate("translate", body.ErrorCode)
	}
	metrics.ErrorResponses.WithLabelValues(body.ErrorCode).Inc()

	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
