// ABOUTME: Estimation request controller owning the submit/response lifecycle
// ABOUTME: Single-flight state machine between the form and the estimation service

package estimator

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/katyalpiyush/workload-estimator-poc/internal/client"
	"go.uber.org/zap"
)

// Estimator issues one estimation call to the remote service
type Estimator interface {
	Estimate(ctx context.Context, req *client.EstimateRequest) (*client.EstimateResponse, error)
}

// State is the controller lifecycle state
type State int

const (
	StateIdle State = iota
	StateInvalid
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInvalid:
		return "invalid"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// SubmitStatus tells the caller what a Submit call did
type SubmitStatus int

const (
	// SubmitIssued means a request is now in flight
	SubmitIssued SubmitStatus = iota
	// SubmitInvalid means required fields were missing and nothing was sent
	SubmitInvalid
	// SubmitBusy means a request was already in flight and nothing changed
	SubmitBusy
	// SubmitRejected means the input could not be coerced into a request
	SubmitRejected
)

// Snapshot is a read-only copy of the controller state for rendering
type Snapshot struct {
	State     State
	Input     RawInput
	Errors    ValidationErrors
	Result    EstimationResult
	LastError error
	// InFlight stays true after a Reset until the discarded call resolves
	InFlight bool
}

// Controller drives one form instance. It is safe for concurrent use.
type Controller struct {
	estimator Estimator
	logger    *zap.Logger

	mu         sync.Mutex
	state      State
	input      RawInput
	errs       ValidationErrors
	result     EstimationResult
	lastErr    error
	inFlight   bool
	generation uint64
}

// NewController creates a controller in the Idle state with default input
func NewController(est Estimator, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		estimator: est,
		logger:    logger,
		state:     StateIdle,
		input:     DefaultInput(),
	}
}

// SetDocumentCount edits the document count field
func (c *Controller) SetDocumentCount(s string) error {
	if err := CheckWholeNumber(s); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.DocumentCount = strings.TrimSpace(s)
	return nil
}

// SetDocumentSize edits the average document size field (bytes)
func (c *Controller) SetDocumentSize(s string) error {
	if err := CheckWholeNumber(s); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.DocumentSize = strings.TrimSpace(s)
	return nil
}

// SetWorkloadNature edits the workload nature field
func (c *Controller) SetWorkloadNature(w WorkloadNature) error {
	nature, err := ParseWorkloadNature(string(w))
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.WorkloadNature = nature
	return nil
}

// Submit validates the current input and, when valid, issues exactly one
// estimation call in the background. The returned channel is closed once the
// outcome has been applied; it is nil unless the status is SubmitIssued.
func (c *Controller) Submit(ctx context.Context) (<-chan struct{}, SubmitStatus) {
	c.mu.Lock()
	if c.inFlight && c.state == StatePending {
		c.mu.Unlock()
		c.logger.Debug("submit ignored, estimate already in flight")
		return nil, SubmitBusy
	}

	// After a reset the stale call still holds the guard, but the fresh
	// input is checked so missing fields are reported
	c.errs = Validate(c.input)
	if c.errs.Any() {
		c.state = StateInvalid
		errs := c.errs
		c.mu.Unlock()
		c.logger.Warn("submit rejected, required fields missing",
			zap.Bool("document_count_missing", errs.DocumentCountMissing),
			zap.Bool("document_size_missing", errs.DocumentSizeMissing),
		)
		return nil, SubmitInvalid
	}

	if c.inFlight {
		c.mu.Unlock()
		c.logger.Debug("submit ignored, discarded estimate still in flight")
		return nil, SubmitBusy
	}

	req, err := NewRequest(c.input)
	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		c.mu.Unlock()
		c.logger.Error("submit rejected, input not coercible", zap.Error(err))
		return nil, SubmitRejected
	}

	c.state = StatePending
	c.lastErr = nil
	c.inFlight = true
	gen := c.generation
	c.mu.Unlock()

	c.logger.Info("estimate submitted",
		zap.Int64("no_of_documents", req.Dataset.NoOfDocuments),
		zap.Int64("average_document_size", req.Dataset.AverageDocumentSize),
		zap.String("workload_nature", req.WorkloadNature),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		resp, err := c.estimator.Estimate(ctx, req)
		c.complete(gen, req, resp, err)
	}()
	return done, SubmitIssued
}

func (c *Controller) complete(gen uint64, req *client.EstimateRequest, resp *client.EstimateResponse, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inFlight = false
	if gen != c.generation {
		c.logger.Info("discarding estimate outcome after reset", zap.Bool("failed", err != nil))
		return
	}

	if err == nil && resp == nil {
		err = &client.MalformedResponseError{Err: errors.New("empty response")}
	}
	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		c.logger.Error("estimate request failed",
			zap.Error(err),
			zap.String("request_id", requestIDOf(err)),
			zap.String("workload_nature", req.WorkloadNature),
			zap.Bool("result_retained", !c.result.IsEmpty()),
		)
		return
	}

	c.result = resultFromResponse(resp)
	c.state = StateSucceeded
	c.logger.Info("estimate succeeded",
		zap.String("request_id", resp.RequestID),
		zap.Int("service_groups", len(c.result.ServiceGroups)),
		zap.Bool("has_summary", c.result.Summary != nil),
	)
}

// Reset returns input, errors and result to their initial values and moves
// to Idle. A call still in flight is allowed to finish but its outcome is dropped.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = StateIdle
	c.input = DefaultInput()
	c.errs = ValidationErrors{}
	c.result = EstimationResult{}
	c.lastErr = nil
	c.logger.Debug("controller reset", zap.Bool("in_flight", c.inFlight))
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State:     c.state,
		Input:     c.input,
		Errors:    c.errs,
		Result:    c.result.Clone(),
		LastError: c.lastErr,
		InFlight:  c.inFlight,
	}
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func requestIDOf(err error) string {
	var terr *client.TransportError
	if errors.As(err, &terr) {
		return terr.RequestID
	}
	var merr *client.MalformedResponseError
	if errors.As(err, &merr) {
		return merr.RequestID
	}
	return ""
}
