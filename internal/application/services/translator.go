// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"
	apperrors "github.com/reglet-dev/seclog/internal/application/errors"
	"github.com/reglet-dev/seclog/internal/application/ports"
	"github.com/reglet-dev/seclog/internal/domain/values"
	"github.com/reglet-dev/seclog/internal/infrastructure/xmltree"
)

// DefaultVersionConstraint accepts every 1.x schema version.
const DefaultVersionConstraint = "^1"

// TranslatorOptions configure a Translator.
type TranslatorOptions struct {
	// Schema selects the XML layout (default: flat)
	Schema string

	// VersionConstraint is checked against the root element's version
	// attribute. A mismatch is logged, never fatal. Empty disables the check.
	VersionConstraint string

	Logger *slog.Logger
}

// Translator applies XML secure logging configuration files to property policies.
// It holds no per-call state and may be shared between goroutines, as long as
// each goroutine writes into its own store.
type Translator struct {
	schema     SchemaStrategy
	constraint *semver.Constraints
	logger     *slog.Logger
}

// NewTranslator creates a translator.
func NewTranslator(opts TranslatorOptions) (*Translator, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	schema, err := SchemaFor(opts.Schema)
	if err != nil {
		return nil, err
	}

	t := &Translator{schema: schema, logger: opts.Logger}
	if opts.VersionConstraint != "" {
		c, err := semver.NewConstraint(opts.VersionConstraint)
		if err != nil {
			return nil, apperrors.NewConfigurationError(
				"schema",
				fmt.Sprintf("invalid version constraint %q", opts.VersionConstraint),
				err,
			)
		}
		t.constraint = c
	}

	return t, nil
}

// Schema returns the name of the selected schema.
func (t *Translator) Schema() string {
	return t.schema.Name()
}

// ApplyLoggingConfiguration reads the XML file at path and writes the
// resulting properties into store. It stops at the first failure without
// undoing earlier writes; callers that need all-or-nothing behavior must
// snapshot the store themselves.
func (t *Translator) ApplyLoggingConfiguration(ctx context.Context, path string, store ports.PropertyStore) error {
	return t.apply(ctx, values.NewInvocationID(), path, store)
}

func (t *Translator) apply(ctx context.Context, id values.InvocationID, path string, store ports.PropertyStore) error {
	logger := t.logger.With("invocation_id", id.String(), "path", path, "schema", t.schema.Name())
	if err := ctx.Err(); err != nil {
		logger.DebugContext(ctx, "logging configuration skipped", "error", err)
		return fmt.Errorf("logging configuration %s not applied: %w", path, err)
	}
	logger.DebugContext(ctx, "loading logging configuration")

	// Unreadable, empty and malformed files all end up without a root element
	doc, loadErr := xmltree.Load(path)
	if loadErr != nil {
		logger.DebugContext(ctx, "failed to load logging configuration", "error", loadErr)
	}

	root, ok := doc.Root(t.schema.RootTag())
	if !ok {
		return apperrors.NewMissingRootElementError(t.schema.RootTag(), loadErr)
	}

	t.checkVersion(ctx, logger, root)

	if err := t.schema.Apply(root, store); err != nil {
		logger.DebugContext(ctx, "logging configuration rejected", "error", err)
		return err
	}

	logger.DebugContext(ctx, "logging configuration applied")
	return nil
}

// checkVersion warns when the document declares a schema version outside the
// configured constraint.
func (t *Translator) checkVersion(ctx context.Context, logger *slog.Logger, root *xmltree.Element) {
	if t.constraint == nil {
		return
	}
	raw, ok := root.Attr("version")
	if !ok {
		return
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		logger.WarnContext(ctx, "unparseable schema version", "version", raw, "error", err)
		return
	}
	if !t.constraint.Check(v) {
		logger.WarnContext(ctx, "unsupported schema version", "version", raw, "constraint", t.constraint.String())
	}
}
