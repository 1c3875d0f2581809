package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/metrics"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
	"github.com/go-resty/resty/v2"
)

// MaxWorkItemsPerBatch is the largest id list the work items endpoint
// accepts in one call.
const MaxWorkItemsPerBatch = 200

type httpIssueTracker struct {
	client     *utils.HTTPClient
	apiVersion string

	logger *logger.Logger
}

type wiqlRequest struct {
	Query string `json:"query"`
}

type wiqlResponse struct {
	WorkItems []struct {
		ID  int64  `json:"id"`
		URL string `json:"url"`
	} `json:"workItems"`
}

type listResponse[T any] struct {
	Count int `json:"count"`
	Value []T `json:"value"`
}

// NewHTTPIssueTracker constructs an HTTP/REST implementation of [IssueTracker].
// It normalises and validates cfg.BaseURL, configures the underlying HTTP
// client with the resolved base URL, request timeout and Basic credential.
//
// The credential is cfg.AuthBasic when set, otherwise base64(":" + PAT).
//
// Returns an error if the base URL cannot be parsed or no credential is
// configured.
func NewHTTPIssueTracker(cfg config.Upstream, log *logger.Logger) (IssueTracker, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid issue tracker base url: %w", err)
	}

	credential := basicCredential(cfg)
	if credential == "" {
		return nil, ErrNoCredentials
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout).WithBasicAuth(credential)

	log.Info().
		Str("base_url", baseURL).
		Str("api_version", cfg.APIVersion).
		Str("credential_fingerprint", config.Fingerprint(credential)).
		Msg("issue tracker client configured")

	return &httpIssueTracker{client: client, apiVersion: cfg.APIVersion, logger: log}, nil
}

func basicCredential(cfg config.Upstream) string {
	if basic := strings.TrimSpace(cfg.AuthBasic); basic != "" {
		return basic
	}

	pat := strings.TrimSpace(cfg.PAT)
	if pat == "" {
		return ""
	}

	return base64.StdEncoding.EncodeToString([]byte(":" + pat))
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// QueryWorkItemIDs implements [IssueTracker]. It POSTs the query to
// POST {project}/_apis/wit/wiql.
func (h *httpIssueTracker) QueryWorkItemIDs(ctx context.Context, project, wiql string) ([]int64, error) {
	resp, err := h.observe("wiql", func() (*resty.Response, error) {
		return h.request(ctx).
			SetBody(wiqlRequest{Query: wiql}).
			Post("/" + url.PathEscape(project) + "/_apis/wit/wiql")
	})
	if err != nil {
		return nil, fmt.Errorf("%w: wiql request: %w", ErrUpstreamUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result wiqlResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: decode wiql result: %w", ErrMalformedResponse, err)
	}

	ids := make([]int64, 0, len(result.WorkItems))
	for _, ref := range result.WorkItems {
		ids = append(ids, ref.ID)
	}

	h.logger.Debug().Str("project", project).Int("work_items", len(ids)).Msg("wiql query executed")
	return ids, nil
}

// GetWorkItems implements [IssueTracker]. It GETs _apis/wit/workitems in
// batches of [MaxWorkItemsPerBatch]. When fields is empty every field is
// expanded; the tracker does not allow both at once.
func (h *httpIssueTracker) GetWorkItems(ctx context.Context, ids []int64, fields []string) ([]models.WorkItem, error) {
	if len(ids) == 0 {
		return []models.WorkItem{}, nil
	}

	items := make([]models.WorkItem, 0, len(ids))
	for start := 0; start < len(ids); start += MaxWorkItemsPerBatch {
		end := min(start+MaxWorkItemsPerBatch, len(ids))

		batch, err := h.getWorkItemsBatch(ctx, ids[start:end], fields)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	if len(items) != len(ids) {
		h.logger.Warn().Int("requested", len(ids)).Int("received", len(items)).Msg("issue tracker returned fewer work items than requested")
	}

	return items, nil
}

func (h *httpIssueTracker) getWorkItemsBatch(ctx context.Context, ids []int64, fields []string) ([]models.WorkItem, error) {
	rawIDs := make([]string, len(ids))
	for i, id := range ids {
		rawIDs[i] = strconv.FormatInt(id, 10)
	}

	req := h.request(ctx).SetQueryParam("ids", strings.Join(rawIDs, ","))
	if len(fields) > 0 {
		req.SetQueryParam("fields", strings.Join(fields, ","))
	} else {
		req.SetQueryParam("$expand", "all")
	}

	resp, err := h.observe("work_items", func() (*resty.Response, error) {
		return req.Get("/_apis/wit/workitems")
	})
	if err != nil {
		return nil, fmt.Errorf("%w: work items request: %w", ErrUpstreamUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result listResponse[models.WorkItem]
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: decode work items: %w", ErrMalformedResponse, err)
	}

	return result.Value, nil
}

// GetWorkItem implements [IssueTracker]. It GETs _apis/wit/workitems/{id}.
func (h *httpIssueTracker) GetWorkItem(ctx context.Context, id int64) (models.WorkItem, error) {
	var item models.WorkItem

	resp, err := h.observe("work_item", func() (*resty.Response, error) {
		return h.request(ctx).
			SetQueryParam("$expand", "all").
			Get("/_apis/wit/workitems/" + strconv.FormatInt(id, 10))
	})
	if err != nil {
		return item, fmt.Errorf("%w: work item request: %w", ErrUpstreamUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return item, err
	}

	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return item, fmt.Errorf("%w: decode work item: %w", ErrMalformedResponse, err)
	}

	return item, nil
}

// ListProjects implements [IssueTracker]. It GETs _apis/projects.
func (h *httpIssueTracker) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := h.observe("projects", func() (*resty.Response, error) {
		return h.request(ctx).Get("/_apis/projects")
	})
	if err != nil {
		return nil, fmt.Errorf("%w: projects request: %w", ErrUpstreamUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result listResponse[models.Project]
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: decode projects: %w", ErrMalformedResponse, err)
	}
	if result.Value == nil {
		result.Value = []models.Project{}
	}

	return result.Value, nil
}

func (h *httpIssueTracker) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.apiVersion != "" {
		req.SetQueryParam("api-version", h.apiVersion)
	}

	return req
}

// observe runs call and records its latency by operation and outcome.
func (h *httpIssueTracker) observe(operation string, call func() (*resty.Response, error)) (*resty.Response, error) {
	start := time.Now()
	resp, err := call()

	outcome := "error"
	if err == nil {
		outcome = strconv.Itoa(resp.StatusCode())
	}
	metrics.UpstreamRequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())

	return resp, err
}
