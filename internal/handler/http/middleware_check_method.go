// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound is registered as the router's NotFound handler so unknown paths
// get the structured 404 payload.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) error {
	return ErrRouteNotFound
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// Chi calls it when the path matches a route that does not handle the
// request method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) error {
	return ErrMethodNotAllowed
}
