package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/reglet-dev/seclog/internal/application/errors"
	"github.com/reglet-dev/seclog/internal/domain/qos"
	"github.com/reglet-dev/seclog/internal/domain/values"
	"github.com/reglet-dev/seclog/internal/infrastructure/xmltree"
)

// ScaffoldVersion is written to the root version attribute of new files.
const ScaffoldVersion = "1.0"

// ScaffoldOptions are the settings of a new logging configuration file.
// Empty fields are left out of the document.
type ScaffoldOptions struct {
	File       string
	Verbosity  string
	Distribute string
	Profile    string
	Depth      string
}

// ErrInvalidScaffold is returned for settings a schema cannot express.
var ErrInvalidScaffold = errors.New("invalid scaffold settings")

// Scaffold builds a new logging configuration document for the named schema.
func Scaffold(schema string, opts ScaffoldOptions) (*xmltree.Builder, error) {
	s, err := SchemaFor(schema)
	if err != nil {
		return nil, err
	}
	if err := validateScaffold(opts); err != nil {
		return nil, err
	}
	return s.Scaffold(opts)
}

func validateScaffold(opts ScaffoldOptions) error {
	// Blank text would be read back as an empty element
	for _, field := range []struct{ name, value string }{
		{"file", opts.File},
		{"verbosity", opts.Verbosity},
		{"distribute", opts.Distribute},
		{"profile", opts.Profile},
		{"depth", opts.Depth},
	} {
		if field.value != "" && strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s must not be blank", ErrInvalidScaffold, field.name)
		}
	}

	if opts.Profile != "" {
		if _, ok := qos.Resolve(opts.Profile); !ok {
			return apperrors.NewUnknownProfileError(opts.Profile)
		}
	}
	if opts.Depth != "" {
		if _, err := strconv.ParseUint(opts.Depth, 10, 64); err != nil {
			return fmt.Errorf("%w: depth %q is not a non-negative integer", ErrInvalidScaffold, opts.Depth)
		}
	}
	switch opts.Distribute {
	case "", "true", "false":
	default:
		return fmt.Errorf("%w: distribute must be true or false, got %q", ErrInvalidScaffold, opts.Distribute)
	}
	return nil
}

func (opts ScaffoldOptions) hasQoS() bool {
	return opts.Profile != "" || opts.Depth != ""
}

func addOptional(el *xmltree.Element, tag, text string) {
	if text != "" {
		el.AddText(tag, text)
	}
}

func addQoS(parent *xmltree.Element, opts ScaffoldOptions) {
	if !opts.hasQoS() {
		return
	}
	q := parent.AddChild("qos")
	addOptional(q, "profile", opts.Profile)
	addOptional(q, "depth", opts.Depth)
}

func (flatSchema) Scaffold(opts ScaffoldOptions) (*xmltree.Builder, error) {
	b := xmltree.NewBuilder(flatSchema{}.RootTag(), "version", ScaffoldVersion)
	root := b.Root()
	addOptional(root, "file", opts.File)
	addOptional(root, "verbosity", opts.Verbosity)
	addOptional(root, "distribute", opts.Distribute)
	addQoS(root, opts)
	return b, nil
}

func (publishSchema) Scaffold(opts ScaffoldOptions) (*xmltree.Builder, error) {
	if opts.Verbosity != "" {
		if _, err := values.NewVerbosity(opts.Verbosity); err != nil {
			return nil, apperrors.NewUnknownVerbosityError(opts.Verbosity)
		}
	}
	if opts.hasQoS() && opts.Distribute != "true" {
		return nil, fmt.Errorf("%w: the publish schema only carries qos when distribute is true", ErrInvalidScaffold)
	}

	b := xmltree.NewBuilder(publishSchema{}.RootTag(), "version", ScaffoldVersion)
	root := b.Root()
	addOptional(root, "file", opts.File)
	addOptional(root, "verbosity", opts.Verbosity)
	if opts.Distribute == "true" {
		addQoS(root.AddChild("publish"), opts)
	}
	return b, nil
}

func (legacySchema) Scaffold(opts ScaffoldOptions) (*xmltree.Builder, error) {
	if opts.hasQoS() {
		return nil, fmt.Errorf("%w: the legacy schema has no qos settings", ErrInvalidScaffold)
	}

	b := xmltree.NewBuilder(legacySchema{}.RootTag(), "version", ScaffoldVersion)
	root := b.Root()
	addOptional(root, "log_file", opts.File)
	addOptional(root, "log_verbosity", opts.Verbosity)
	if opts.Distribute != "" {
		root.AddChild("distribute").AddText("enable", opts.Distribute)
	}
	return b, nil
}
