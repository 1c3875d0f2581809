package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/service"
)

// maxBodyBytes bounds every request body read by a route handler.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the body of r into dst. Any decoding failure is a
// validation error on field "body".
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return service.Validation("body", app.MsgInvalidDataProvided, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}

	return nil
}

// readBody returns the raw body of r.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, service.Validation("body", app.MsgInvalidDataProvided, err)
		}
		return nil, fmt.Errorf("error reading request body: %w", err)
	}

	return body, nil
}
