package dto

import (
	"time"

	"github.com/reglet-dev/seclog/internal/domain/policy"
	"github.com/reglet-dev/seclog/internal/domain/values"
)

// ApplyReport is the outcome of an ApplyRequest.
type ApplyReport struct {
	Tool      string        `json:"tool" yaml:"tool"`
	Version   string        `json:"version" yaml:"version"`
	Schema    string        `json:"schema" yaml:"schema"`
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Results   []FileResult  `json:"results" yaml:"results"`
}

// FileResult is the outcome of translating one file.
type FileResult struct {
	Path         string              `json:"path" yaml:"path"`
	InvocationID values.InvocationID `json:"invocation_id" yaml:"invocation_id"`
	Status       values.Status       `json:"status" yaml:"status"`
	Properties   []policy.Property   `json:"properties" yaml:"properties"`
	ErrorKind    string              `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Error        string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed returns the number of files that did not apply cleanly.
func (r *ApplyReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Status.IsFailure() {
			n++
		}
	}
	return n
}

// Status summarizes the report using status precedence.
func (r *ApplyReport) Status() values.Status {
	worst := values.StatusApplied
	for _, res := range r.Results {
		if res.Status.Precedence() > worst.Precedence() {
			worst = res.Status
		}
	}
	return worst
}
