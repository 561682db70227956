// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/seclog/internal/application/dto"
	"github.com/reglet-dev/seclog/internal/domain/policy"
	"github.com/reglet-dev/seclog/internal/infrastructure/system"
)

// PropertyStore is the property policy a translation writes into.
// Add must reject a name that is already present; the translator removes
// before adding to get replace semantics.
type PropertyStore interface {
	Add(name, value string, propagate bool) error
	Remove(name string) bool
	Lookup(name string) (policy.Property, bool)
}

// SystemConfigProvider loads system configuration.
type SystemConfigProvider interface {
	LoadConfig(ctx context.Context, path string) (*system.Config, error)
}

// OutputFormatter formats apply reports.
type OutputFormatter interface {
	Format(report *dto.ApplyReport) error
}

// FormatterOptions configure an output formatter.
type FormatterOptions struct {
	// Indent pretty-prints JSON output
	Indent bool

	// Color enables ANSI colors in table output
	Color bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
