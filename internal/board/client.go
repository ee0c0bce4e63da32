package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"job-board-backend/internal/domain"
)

// APIError is a non-2xx answer from the job board API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("job board api: status %d: %s", e.StatusCode, e.Body)
}

// APIClient talks to the job board HTTP API. It implements JobsAPI.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *APIClient) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.getJSON(ctx, "/api/jobs", filterQuery(filter), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *APIClient) CreateJob(ctx context.Context, in domain.JobInput) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/jobs", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Preview asks the API for the Open Graph summary of rawURL.
func (c *APIClient) Preview(ctx context.Context, rawURL string) (*domain.LinkPreview, error) {
	var preview domain.LinkPreview
	if err := c.getJSON(ctx, "/api/preview", url.Values{"url": {rawURL}}, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// Export streams the filtered listing in format ("xlsx" or "csv") to w and
// returns the file name suggested by the server.
func (c *APIClient) Export(ctx context.Context, filter domain.JobFilter, format string, w io.Writer) (string, error) {
	q := filterQuery(filter)
	q.Set("format", format)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/jobs/export?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("reading export: %w", err)
	}
	return filenameFrom(resp.Header.Get("Content-Disposition")), nil
}

func (c *APIClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// do executes req and turns non-2xx answers into *APIError.
func (c *APIClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return resp, nil
}

// filterQuery only sends the filters that are set.
func filterQuery(f domain.JobFilter) url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.Tag != "" {
		q.Set("tag", f.Tag)
	}
	return q
}

func filenameFrom(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
