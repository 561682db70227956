// Package dto contains data transfer objects for application layer use cases.
package dto

import "github.com/reglet-dev/seclog/internal/domain/policy"

// ApplyRequest encapsulates all inputs needed to translate a batch of
// logging configuration files.
type ApplyRequest struct {
	// Paths are translated independently, each into its own policy
	Paths []string

	// Seed properties are added to every policy before translation,
	// standing in for properties the participant already carries
	Seed []policy.Property

	// Options controls execution
	Options ApplyOptions
}

// ApplyOptions controls how files are translated.
type ApplyOptions struct {
	// MaxProperties bounds each policy (0 = no limit)
	MaxProperties int

	// Jobs limits concurrent files (0 = one per file)
	Jobs int

	// Atomic restores the seeded policy when a file fails
	Atomic bool
}
