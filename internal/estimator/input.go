// ABOUTME: Raw user input for an estimation and its field-level rules
// ABOUTME: Defines workload natures, whole-number checks, and request construction

package estimator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katyalpiyush/workload-estimator-poc/internal/client"
)

// WorkloadNature is the read/write mix used as a sizing dimension
type WorkloadNature string

const (
	WorkloadRead      WorkloadNature = "read"
	WorkloadWrite     WorkloadNature = "write"
	WorkloadReadWrite WorkloadNature = "readwrite"
)

// WorkloadNatures lists the supported natures in presentation order
var WorkloadNatures = []WorkloadNature{WorkloadRead, WorkloadWrite, WorkloadReadWrite}

// ErrNotWholeNumber is returned when a numeric field edit is not a base-10 whole number
var ErrNotWholeNumber = errors.New("must be a whole number")

// ErrUnknownWorkload is returned for workload natures outside read, write, readwrite
var ErrUnknownWorkload = errors.New("workload nature must be one of read, write, readwrite")

// Label returns the human-readable name of the workload nature
func (w WorkloadNature) Label() string {
	switch w {
	case WorkloadRead:
		return "Read"
	case WorkloadWrite:
		return "Write"
	case WorkloadReadWrite:
		return "Read/Write"
	}
	return string(w)
}

// Description explains what the workload nature means
func (w WorkloadNature) Description() string {
	switch w {
	case WorkloadRead:
		return "A read workload is used for querying data."
	case WorkloadWrite:
		return "A write workload is used for inserting data."
	case WorkloadReadWrite:
		return "A read-write workload involves both querying and inserting data."
	}
	return ""
}

// ParseWorkloadNature converts user text to a WorkloadNature
func ParseWorkloadNature(s string) (WorkloadNature, error) {
	w := WorkloadNature(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case WorkloadRead, WorkloadWrite, WorkloadReadWrite:
		return w, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownWorkload)
}

// RawInput is the user-edited form state. Empty numeric strings mean unset.
type RawInput struct {
	DocumentCount  string
	DocumentSize   string
	WorkloadNature WorkloadNature
}

// DefaultInput returns the input a fresh form starts with
func DefaultInput() RawInput {
	return RawInput{WorkloadNature: WorkloadRead}
}

// CheckWholeNumber accepts the empty string or a base-10 whole number
// that fits in an int64
func CheckWholeNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ErrNotWholeNumber
		}
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return ErrNotWholeNumber
	}
	return nil
}

// NewRequest coerces a validated RawInput into the wire request
func NewRequest(raw RawInput) (*client.EstimateRequest, error) {
	count, err := strconv.ParseInt(strings.TrimSpace(raw.DocumentCount), 10, 64)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("document count %q: %w", raw.DocumentCount, ErrNotWholeNumber)
	}
	size, err := strconv.ParseInt(strings.TrimSpace(raw.DocumentSize), 10, 64)
	if err != nil || size < 0 {
		return nil, fmt.Errorf("document size %q: %w", raw.DocumentSize, ErrNotWholeNumber)
	}
	nature, err := ParseWorkloadNature(string(raw.WorkloadNature))
	if err != nil {
		return nil, err
	}
	return &client.EstimateRequest{
		Dataset: client.Dataset{
			NoOfDocuments:       count,
			AverageDocumentSize: size,
		},
		WorkloadNature: string(nature),
	}, nil
}
