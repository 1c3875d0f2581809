// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPAT = "test-personal-access-token"

// newTestTracker creates an httpIssueTracker aimed at the test server.
func newTestTracker(t *testing.T, serverURL string) *httpIssueTracker {
	t.Helper()
	cfg := config.Upstream{
		PAT:        testPAT,
		BaseURL:    serverURL + "/acme/",
		APIVersion: "7.0",
		Timeout:    2 * time.Second,
	}

	tracker, err := NewHTTPIssueTracker(cfg, logger.Nop())
	require.NoError(t, err)
	return tracker.(*httpIssueTracker)
}

func expectedBasic() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+testPAT))
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPIssueTracker_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Upstream
		want error
	}{
		{"no credentials", config.Upstream{BaseURL: "https://dev.azure.com/acme/"}, ErrNoCredentials},
		{"whitespace pat", config.Upstream{BaseURL: "https://dev.azure.com/acme/", PAT: "   "}, ErrNoCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPIssueTracker(tt.cfg, logger.Nop())
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := NewHTTPIssueTracker(config.Upstream{PAT: "x"}, logger.Nop())
	assert.Error(t, err, "empty base url must be rejected")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"https://dev.azure.com/acme/", "https://dev.azure.com/acme", false},
		{"dev.azure.com/acme", "https://dev.azure.com/acme", false},
		{"  http://localhost:8080  ", "http://localhost:8080", false},
		{"", "", true},
		{"https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBasicCredential_AuthBasicWins(t *testing.T) {
	assert.Equal(t, "pre-encoded", basicCredential(config.Upstream{PAT: "pat", AuthBasic: "pre-encoded"}))
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte(":pat")), basicCredential(config.Upstream{PAT: "pat"}))
}

// ── QueryWorkItemIDs ────────────────────────────────────────────────────────

func TestQueryWorkItemIDs_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/acme/Root Project/_apis/wit/wiql", r.URL.Path)
		assert.Equal(t, "7.0", r.URL.Query().Get("api-version"))
		assert.Equal(t, expectedBasic(), r.Header.Get("Authorization"))

		var body wiqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "SELECT [System.Id] FROM workitems", body.Query)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"workItems":[{"id":3,"url":"u3"},{"id":1,"url":"u1"}]}`))
	}))
	defer srv.Close()

	ids, err := newTestTracker(t, srv.URL).QueryWorkItemIDs(context.Background(), "Root Project", "SELECT [System.Id] FROM workitems")

	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, ids)
}

func TestQueryWorkItemIDs_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"bad query", http.StatusBadRequest, `{"message":"TF51005: The query references a field that does not exist."}`, ErrBadQuery},
		{"unauthorized", http.StatusUnauthorized, "", ErrUpstreamUnauthorized},
		{"sign-in page", http.StatusNonAuthoritativeInfo, "<html>sign in</html>", ErrUpstreamUnauthorized},
		{"redirect", http.StatusFound, "", ErrUpstreamUnauthorized},
		{"project missing", http.StatusNotFound, `{"message":"project not found"}`, ErrNotFound},
		{"server error", http.StatusInternalServerError, "boom", ErrUpstreamFailure},
		{"bad gateway", http.StatusBadGateway, "", ErrUpstreamFailure},
		{"forbidden", http.StatusForbidden, "", ErrUpstreamFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status == http.StatusFound {
					w.Header().Set("Location", "/_signin")
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestTracker(t, srv.URL).QueryWorkItemIDs(context.Background(), "p", "q")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestQueryWorkItemIDs_BadQueryCarriesUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"TF51005: unknown field"}`))
	}))
	defer srv.Close()

	_, err := newTestTracker(t, srv.URL).QueryWorkItemIDs(context.Background(), "p", "q")

	require.ErrorIs(t, err, ErrBadQuery)
	assert.Contains(t, err.Error(), "TF51005")
}

func TestQueryWorkItemIDs_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	tracker := newTestTracker(t, srv.URL)
	srv.Close()

	_, err := tracker.QueryWorkItemIDs(context.Background(), "p", "q")

	assert.ErrorIs(t, err, ErrUpstreamUnreachable)
}

func TestQueryWorkItemIDs_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestTracker(t, srv.URL).QueryWorkItemIDs(context.Background(), "p", "q")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── GetWorkItems ────────────────────────────────────────────────────────────

func TestGetWorkItems_BatchesOf200(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/acme/_apis/wit/workitems", r.URL.Path)
		assert.Equal(t, "System.Title,System.State", r.URL.Query().Get("fields"))
		assert.Empty(t, r.URL.Query().Get("$expand"))

		rawIDs := strings.Split(r.URL.Query().Get("ids"), ",")
		assert.LessOrEqual(t, len(rawIDs), MaxWorkItemsPerBatch)

		items := make([]string, 0, len(rawIDs))
		for _, raw := range rawIDs {
			items = append(items, fmt.Sprintf(`{"id":%s,"rev":1,"fields":{"System.Title":"t%s"}}`, raw, raw))
		}
		_, _ = fmt.Fprintf(w, `{"count":%d,"value":[%s]}`, len(items), strings.Join(items, ","))
	}))
	defer srv.Close()

	ids := make([]int64, 450)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	items, err := newTestTracker(t, srv.URL).GetWorkItems(context.Background(), ids, []string{"System.Title", "System.State"})

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, items, 450)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "t450", items[449].Title())
}

func TestGetWorkItems_ExpandAllWithoutFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("$expand"))
		assert.Empty(t, r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`{"count":1,"value":[{"id":7,"fields":{}}]}`))
	}))
	defer srv.Close()

	items, err := newTestTracker(t, srv.URL).GetWorkItems(context.Background(), []int64{7}, nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ID)
}

func TestGetWorkItems_EmptyIDsSkipsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	items, err := newTestTracker(t, srv.URL).GetWorkItems(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetWorkItems_BatchFailureStops(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ids := make([]int64, 401)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	_, err := newTestTracker(t, srv.URL).GetWorkItems(context.Background(), ids, nil)

	assert.ErrorIs(t, err, ErrUpstreamFailure)
	assert.Equal(t, int32(1), calls.Load())
}

// ── GetWorkItem ─────────────────────────────────────────────────────────────

func TestGetWorkItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme/_apis/wit/workitems/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"rev":3,"fields":{"System.Title":"Login page","System.State":"Active","System.AssignedTo":{"displayName":"Jane"}}}`))
	}))
	defer srv.Close()

	item, err := newTestTracker(t, srv.URL).GetWorkItem(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, "Login page", item.Title())
	assert.Equal(t, "Active", item.State())
	assert.Equal(t, "Jane", item.AssignedTo())
}

func TestGetWorkItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"TF401232: Work item 9 does not exist"}`))
	}))
	defer srv.Close()

	_, err := newTestTracker(t, srv.URL).GetWorkItem(context.Background(), 9)

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── ListProjects ────────────────────────────────────────────────────────────

func TestListProjects_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme/_apis/projects", r.URL.Path)
		_, _ = w.Write([]byte(`{"count":2,"value":[{"id":"a","name":"Alpha","state":"wellFormed"},{"id":"b","name":"Beta"}]}`))
	}))
	defer srv.Close()

	projects, err := newTestTracker(t, srv.URL).ListProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Alpha", projects[0].Name)
	assert.Equal(t, "wellFormed", projects[0].State)
}

func TestListProjects_EmptyValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":0}`))
	}))
	defer srv.Close()

	projects, err := newTestTracker(t, srv.URL).ListProjects(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestListProjects_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestTracker(t, srv.URL).ListProjects(ctx)

	assert.ErrorIs(t, err, ErrUpstreamUnreachable)
}
