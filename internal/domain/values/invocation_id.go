// Package values contains domain value objects for secure logging
// translation: property keys, verbosity levels, statuses and invocation IDs.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// InvocationID identifies one translation run in logs and reports.
type InvocationID struct {
	value uuid.UUID
}

// NewInvocationID creates a new random invocation ID
func NewInvocationID() InvocationID {
	return InvocationID{value: uuid.New()}
}

// ParseInvocationID parses a string into an InvocationID
func ParseInvocationID(s string) (InvocationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return InvocationID{}, fmt.Errorf("invalid invocation ID: %w", err)
	}
	return InvocationID{value: id}, nil
}

// String returns the string representation
func (i InvocationID) String() string {
	return i.value.String()
}

// IsZero returns true if this is the zero value
func (i InvocationID) IsZero() bool {
	return i.value == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler so IDs render in JSON and YAML output.
func (i InvocationID) MarshalText() ([]byte, error) {
	return []byte(i.value.String()), nil
}
