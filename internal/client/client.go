// ABOUTME: HTTP client for the workload estimation service
// ABOUTME: Wraps POST /estimate with request IDs and typed transport/shape errors

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EstimatePath is the estimation endpoint relative to the base URL
const EstimatePath = "/estimate"

// RequestIDHeader carries the per-call correlation ID
const RequestIDHeader = "X-Request-ID"

// Client is the API client for the estimation service
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new API client with the given base URL.
// The estimation call has no client-side timeout; callers bound it with ctx.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured service URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Dataset describes the documents to be sized
type Dataset struct {
	NoOfDocuments       int64 `json:"no_of_documents"`
	AverageDocumentSize int64 `json:"average_document_size"`
}

// EstimateRequest is the body of POST /estimate
type EstimateRequest struct {
	Dataset        Dataset `json:"dataset"`
	WorkloadNature string  `json:"workload_nature"`
}

// Summary is the top-level recommendation digest
type Summary struct {
	ClusterOption  string   `json:"cluster_option"`
	NodesAllocated int64    `json:"nodes_allocated"`
	ServiceGroups  int64    `json:"service_groups"`
	Services       []string `json:"services"`
	WorkloadType   string   `json:"workload_type"`
}

// ServiceGroupResult holds the resource estimates for one service group
type ServiceGroupResult struct {
	Services        []string        `json:"services"`
	Nodes           int64           `json:"nodes"`
	EstimatedRAM    decimal.Decimal `json:"estimated_ram"`
	EstimatedCPU    decimal.Decimal `json:"estimated_cpu"`
	DiskType        string          `json:"disk_type"`
	EstimatedDisk   decimal.Decimal `json:"estimated_disk"`
	EstimatedDiskIO decimal.Decimal `json:"estimated_disk_io"`
}

// UnmarshalJSON decodes a group strictly. Every field is required, and the
// figures must be JSON numbers.
func (g *ServiceGroupResult) UnmarshalJSON(data []byte) error {
	var wire struct {
		Services        *[]string       `json:"services"`
		Nodes           *int64          `json:"nodes"`
		EstimatedRAM    json.RawMessage `json:"estimated_ram"`
		EstimatedCPU    json.RawMessage `json:"estimated_cpu"`
		DiskType        *string         `json:"disk_type"`
		EstimatedDisk   json.RawMessage `json:"estimated_disk"`
		EstimatedDiskIO json.RawMessage `json:"estimated_disk_io"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Services == nil {
		return errors.New("service group is missing services")
	}
	if wire.Nodes == nil {
		return errors.New("service group is missing nodes")
	}
	if wire.DiskType == nil {
		return errors.New("service group is missing disk_type")
	}

	out := ServiceGroupResult{
		Services: *wire.Services,
		Nodes:    *wire.Nodes,
		DiskType: *wire.DiskType,
	}
	figures := []struct {
		name string
		raw  json.RawMessage
		dst  *decimal.Decimal
	}{
		{"estimated_ram", wire.EstimatedRAM, &out.EstimatedRAM},
		{"estimated_cpu", wire.EstimatedCPU, &out.EstimatedCPU},
		{"estimated_disk", wire.EstimatedDisk, &out.EstimatedDisk},
		{"estimated_disk_io", wire.EstimatedDiskIO, &out.EstimatedDiskIO},
	}
	for _, f := range figures {
		value, err := parseFigure(f.name, f.raw)
		if err != nil {
			return err
		}
		*f.dst = value
	}

	*g = out
	return nil
}

// parseFigure accepts only a bare JSON number
func parseFigure(name string, raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Zero, fmt.Errorf("service group is missing %s", name)
	}
	var n json.Number
	if raw[0] == '"' || json.Unmarshal(raw, &n) != nil || n == "" {
		return decimal.Zero, fmt.Errorf("service group %s is not a number: %s", name, raw)
	}
	return decimal.NewFromString(n.String())
}

// EstimateResponse is the success body of POST /estimate.
// Summary may be absent in degraded responses.
type EstimateResponse struct {
	Summary              *Summary             `json:"summary,omitempty"`
	ServiceGroupsResults []ServiceGroupResult `json:"service_groups_results"`

	// RequestID is the correlation ID sent with the call
	RequestID string `json:"-"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// TransportError is returned when the service cannot be reached or answers
// with a non-2xx status. StatusCode is 0 when no response was received.
type TransportError struct {
	URL        string
	RequestID  string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		switch {
		case errors.Is(e.Err, context.Canceled):
			return "request canceled"
		case errors.Is(e.Err, context.DeadlineExceeded):
			return "request timed out"
		}
		return fmt.Sprintf("cannot connect to backend at %s: %v", e.URL, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is returned when a 2xx body does not match the
// estimation response contract
type MalformedResponseError struct {
	RequestID string
	Err       error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid response from backend: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Estimate calls POST /estimate exactly once
func (c *Client) Estimate(ctx context.Context, input *EstimateRequest) (*EstimateResponse, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	url := c.baseURL + EstimatePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	c.logger.Debug("sending estimate request",
		zap.String("request_id", requestID),
		zap.String("url", url),
		zap.Int64("no_of_documents", input.Dataset.NoOfDocuments),
		zap.Int64("average_document_size", input.Dataset.AverageDocumentSize),
		zap.String("workload_nature", input.WorkloadNature),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: c.baseURL, RequestID: requestID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.handleErrorResponse(resp, requestID)
	}

	estimate, err := decodeEstimate(resp.Body)
	if err != nil {
		return nil, &MalformedResponseError{RequestID: requestID, Err: err}
	}
	estimate.RequestID = requestID

	c.logger.Debug("estimate response received",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("service_groups", len(estimate.ServiceGroupsResults)),
		zap.Bool("has_summary", estimate.Summary != nil),
	)

	return estimate, nil
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response, requestID string) error {
	terr := &TransportError{URL: c.baseURL, RequestID: requestID, StatusCode: resp.StatusCode}
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		terr.Message = errResp.Error
	}
	return terr
}

// decodeEstimate parses and shape-checks a success body
func decodeEstimate(r io.Reader) (*EstimateResponse, error) {
	dec := json.NewDecoder(r)
	var estimate EstimateResponse
	if err := dec.Decode(&estimate); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after response body")
	}
	if err := estimate.validate(); err != nil {
		return nil, err
	}
	return &estimate, nil
}

func (r *EstimateResponse) validate() error {
	if r.ServiceGroupsResults == nil {
		return errors.New("missing service_groups_results")
	}
	if s := r.Summary; s != nil {
		if s.NodesAllocated < 0 {
			return fmt.Errorf("summary.nodes_allocated is negative: %d", s.NodesAllocated)
		}
		if s.ServiceGroups < 0 {
			return fmt.Errorf("summary.service_groups is negative: %d", s.ServiceGroups)
		}
	}
	for i, g := range r.ServiceGroupsResults {
		if g.Nodes < 0 {
			return fmt.Errorf("service_groups_results[%d].nodes is negative: %d", i, g.Nodes)
		}
		figures := []struct {
			name  string
			value decimal.Decimal
		}{
			{"estimated_ram", g.EstimatedRAM},
			{"estimated_cpu", g.EstimatedCPU},
			{"estimated_disk", g.EstimatedDisk},
			{"estimated_disk_io", g.EstimatedDiskIO},
		}
		for _, f := range figures {
			if f.value.IsNegative() {
				return fmt.Errorf("service_groups_results[%d].%s is negative: %s", i, f.name, f.value)
			}
		}
	}
	return nil
}
