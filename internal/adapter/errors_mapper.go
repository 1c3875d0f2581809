package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// upstreamError is the error body the tracker sends with non-2xx responses.
type upstreamError struct {
	Message string `json:"message"`
}

// mapHTTPError converts a non-2xx response into one of the package
// sentinels. A 203 is what the tracker answers with a sign-in page when the
// credential is invalid, so it is treated like 401 and 302.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices && status != http.StatusNonAuthoritativeInfo {
		return nil
	}

	detail := errorDetail(resp)

	switch {
	case status == http.StatusUnauthorized,
		status == http.StatusNonAuthoritativeInfo,
		status == http.StatusFound:
		return fmt.Errorf("%w: http %d", ErrUpstreamUnauthorized, status)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadQuery, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamFailure, status, detail)
	default:
		return fmt.Errorf("%w: unexpected http %d: %s", ErrUpstreamFailure, status, detail)
	}
}

func errorDetail(resp *resty.Response) string {
	var body upstreamError
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return body.Message
	}

	if detail := strings.TrimSpace(string(resp.Body())); detail != "" && len(detail) <= 512 {
		return detail
	}

	return http.StatusText(resp.StatusCode())
}
