// Package remote provides a RemoteStore adapter backed by the document
// question-answering service's HTTP API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driven"
	"github.com/askpdf-labs/askpdf-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RemoteStore = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 120 * time.Second
)

// uploadFieldName is the multipart form field the service reads the
// document from.
const uploadFieldName = "pdf"

// Operation names carried in transport and remote errors.
const (
	opUpload  = "upload"
	opList    = "list files"
	opDelete  = "delete"
	opAsk     = "ask"
	opHealth  = "health"
	opCleanup = "cleanup status"
)

// Config holds configuration for the remote service client.
type Config struct {
	// BaseURL is the service address including any path prefix
	// (default: http://localhost:5000/api).
	BaseURL string

	// Timeout bounds each request end to end (default: 120s).
	// Answering a question runs a retrieval pipeline server-side
	// and can take a while.
	Timeout time.Duration

	// HTTPClient overrides the underlying HTTP client. When nil, a
	// client with Timeout applied is used.
	HTTPClient *http.Client
}

// Client talks to the question-answering service over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	rootURL string
}

// uploadResponse is the /upload response format.
type uploadResponse struct {
	Message      string `json:"message"`
	Filename     string `json:"filename"`
	Size         int64  `json:"size"`
	AutoDeleteIn int    `json:"auto_delete_in"`
}

// listFilesResponse is the /list-files response format.
type listFilesResponse struct {
	Files []struct {
		Name          string `json:"name"`
		Size          int64  `json:"size"`
		TimeRemaining *int   `json:"time_remaining"`
		UploadTime    string `json:"upload_time"`
	} `json:"files"`
	TotalFiles      int `json:"total_files"`
	CleanupInterval int `json:"cleanup_interval"`
}

// messageResponse is the shape of bodies that only confirm an action.
type messageResponse struct {
	Message string `json:"message"`
}

// askRequest is the /ask request format.
type askRequest struct {
	Question string `json:"question"`
}

// askResponse is the /ask response format.
type askResponse struct {
	Answer  string `json:"answer"`
	Sources []struct {
		Source  string     `json:"source"`
		Page    pageNumber `json:"page"`
		Content string     `json:"content"`
	} `json:"sources"`
	Question string `json:"question"`
}

// healthResponse is the health probe response format.
type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// cleanupStatusResponse is the /cleanup-status response format.
type cleanupStatusResponse struct {
	CleanupInterval int `json:"cleanup_interval"`
	TotalFiles      int `json:"total_files"`
	Files           []struct {
		Filename         string `json:"filename"`
		UploadedAt       string `json:"uploaded_at"`
		MinutesRemaining int    `json:"minutes_remaining"`
	} `json:"files"`
}

// remoteFailure is the failure body shape shared by every endpoint.
type remoteFailure struct {
	Error string `json:"error"`
}

// pageNumber tolerates the two encodings the service uses for a page
// reference: a JSON number, or a string ("N/A" when unknown).
type pageNumber int

func (p *pageNumber) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = pageNumber(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("page is neither number nor string: %s", data)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		*p = pageNumber(n)
		return nil
	}
	*p = 0
	return nil
}

// NewClient creates a remote service client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("remote: invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("remote: base URL %q has no host", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	// The health probe lives at the server root, above the API path
	// prefix.
	root := *parsed
	root.Path = "/"
	root.RawQuery = ""

	return &Client{
		client:  httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		rootURL: root.String(),
	}, nil
}

// Upload sends one document to the service as a multipart form.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*domain.UploadReceipt, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalise form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp uploadResponse
	if err := c.do(opUpload, req, &resp); err != nil {
		return nil, err
	}

	return &domain.UploadReceipt{
		Message:      resp.Message,
		FileName:     resp.Filename,
		Size:         resp.Size,
		AutoDeleteIn: resp.AutoDeleteIn,
	}, nil
}

// ListFiles returns the authoritative list of stored documents.
func (c *Client) ListFiles(ctx context.Context) ([]domain.DocumentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/list-files", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var resp listFilesResponse
	if err := c.do(opList, req, &resp); err != nil {
		return nil, err
	}

	records := make([]domain.DocumentRecord, len(resp.Files))
	for i, f := range resp.Files {
		records[i] = domain.DocumentRecord{
			Name:          f.Name,
			Size:          f.Size,
			TimeRemaining: f.TimeRemaining,
			UploadedAt:    parseTimestamp(f.UploadTime),
		}
	}
	return records, nil
}

// Delete removes one stored document by name.
func (c *Client) Delete(ctx context.Context, name string) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodDelete,
		c.baseURL+"/delete/"+url.PathEscape(name),
		http.NoBody,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	var resp messageResponse
	return c.do(opDelete, req, &resp)
}

// Ask submits a question about the stored documents.
func (c *Client) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	jsonBody, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp askResponse
	if err := c.do(opAsk, req, &resp); err != nil {
		return nil, err
	}

	answer := &domain.Answer{Text: resp.Answer}
	if len(resp.Sources) > 0 {
		answer.Citations = make([]domain.Citation, len(resp.Sources))
		for i, src := range resp.Sources {
			answer.Citations[i] = domain.Citation{
				Source:  src.Source,
				Page:    int(src.Page),
				Excerpt: src.Content,
			}
		}
	}
	return answer, nil
}

// Health probes the service's health endpoint.
func (c *Client) Health(ctx context.Context) (*domain.ServiceStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rootURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var resp healthResponse
	if err := c.do(opHealth, req, &resp); err != nil {
		return nil, err
	}

	return &domain.ServiceStatus{
		Status:  resp.Status,
		Message: resp.Message,
		Version: resp.Version,
	}, nil
}

// CleanupStatus reports the service's automatic deletion schedule.
func (c *Client) CleanupStatus(ctx context.Context) (*domain.CleanupStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cleanup-status", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var resp cleanupStatusResponse
	if err := c.do(opCleanup, req, &resp); err != nil {
		return nil, err
	}

	status := &domain.CleanupStatus{
		IntervalMinutes: resp.CleanupInterval,
		TotalFiles:      resp.TotalFiles,
		Files:           make([]domain.CleanupEntry, len(resp.Files)),
	}
	for i, f := range resp.Files {
		entry := domain.CleanupEntry{
			Name:             f.Filename,
			MinutesRemaining: f.MinutesRemaining,
		}
		if t := parseTimestamp(f.UploadedAt); t != nil {
			entry.UploadedAt = *t
		}
		status.Files[i] = entry
	}
	return status, nil
}

// Close releases held connections.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// do executes one request and decodes the response into out, mapping
// failures onto the domain error taxonomy: the service unreachable or
// the body unreadable is a TransportError, a reported failure or a
// non-2xx status is a RemoteError, and a malformed success body is a
// TransportError again.
func (c *Client) do(op string, req *http.Request, out any) error {
	logger.Debug("%s %s", req.Method, req.URL)

	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	logger.Debug("%s %s -> %d (%d bytes)", req.Method, req.URL.Path, resp.StatusCode, len(body))

	// The service reports failures as {"error": "..."}, usually with a
	// non-2xx status. Check the error field first so its reason wins
	// over a bare status line.
	var failure remoteFailure
	if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
		return &domain.RemoteError{Op: op, StatusCode: resp.StatusCode, Reason: failure.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := strings.TrimSpace(string(body))
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		return &domain.RemoteError{Op: op, StatusCode: resp.StatusCode, Reason: reason}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// timestampLayouts covers the service's timestamp encodings: RFC 3339
// when a zone is present, Python isoformat when it is not.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTimestamp decodes an optional service timestamp. Absent or
// unparseable values come back nil rather than failing the response.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
