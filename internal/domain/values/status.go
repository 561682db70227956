package values

import "fmt"

// Status is the outcome of applying one configuration file.
type Status string

const (
	// StatusApplied indicates every configured property was written
	StatusApplied Status = "applied"
	// StatusPartial indicates a failure after some properties were written;
	// the written properties remain in the policy
	StatusPartial Status = "partial"
	// StatusFailed indicates a failure that left the policy as it was
	StatusFailed Status = "failed"
)

// Precedence returns the numeric precedence of this status.
// Higher values win when summarizing several files.
//
// Precedence: Partial (2) > Failed (1) > Applied (0)
func (s Status) Precedence() int {
	switch s {
	case StatusPartial:
		return 2
	case StatusFailed:
		return 1
	case StatusApplied:
		return 0
	default:
		return -1
	}
}

// IsFailure returns true if this status represents a failure
func (s Status) IsFailure() bool {
	return s == StatusPartial || s == StatusFailed
}

// IsSuccess returns true if this status represents success
func (s Status) IsSuccess() bool {
	return s == StatusApplied
}

// Validate returns an error if the status value is invalid
func (s Status) Validate() error {
	switch s {
	case StatusApplied, StatusPartial, StatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", s)
	}
}
