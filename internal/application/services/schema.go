package services

import (
	"fmt"
	"sort"

	apperrors "github.com/reglet-dev/seclog/internal/application/errors"
	"github.com/reglet-dev/seclog/internal/application/ports"
	"github.com/reglet-dev/seclog/internal/domain/qos"
	"github.com/reglet-dev/seclog/internal/domain/values"
	"github.com/reglet-dev/seclog/internal/infrastructure/xmltree"
)

// Schema names.
const (
	SchemaFlat    = "flat"
	SchemaPublish = "publish"
	SchemaLegacy  = "legacy"
)

// DefaultSchema is used when no schema is selected.
const DefaultSchema = SchemaFlat

// SchemaStrategy maps one variant of the logging XML schema onto the policy.
// Variants are chosen explicitly; the translator never guesses from content.
type SchemaStrategy interface {
	// Name identifies the schema on the command line and in config.
	Name() string

	// RootTag is the root element the file must carry.
	RootTag() string

	// Apply writes properties from root, stopping at the first failure.
	// Properties written before a failure stay in the store.
	Apply(root *xmltree.Element, store ports.PropertyStore) error

	// Scaffold builds a document that Apply translates back into opts.
	Scaffold(opts ScaffoldOptions) (*xmltree.Builder, error)
}

var schemas = map[string]SchemaStrategy{
	SchemaFlat:    flatSchema{},
	SchemaPublish: publishSchema{},
	SchemaLegacy:  legacySchema{},
}

// SchemaFor returns the strategy registered under name.
// An empty name selects DefaultSchema.
func SchemaFor(name string) (SchemaStrategy, error) {
	if name == "" {
		name = DefaultSchema
	}
	s, ok := schemas[name]
	if !ok {
		return nil, apperrors.NewConfigurationError(
			"schema",
			fmt.Sprintf("unknown schema %q (supported: %v)", name, SchemaNames()),
			nil,
		)
	}
	return s, nil
}

// SchemaNames returns the registered schema names, sorted.
func SchemaNames() []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// flatSchema is the primary schema:
//
//	<security_log version="1">
//	  <file/> <verbosity/> <distribute/>
//	  <qos><profile/><depth/></qos>
//	</security_log>
//
// verbosity and distribute are passed through untouched.
type flatSchema struct{}

func (flatSchema) Name() string    { return SchemaFlat }
func (flatSchema) RootTag() string { return "security_log" }

func (flatSchema) Apply(root *xmltree.Element, store ports.PropertyStore) error {
	if err := ApplyFromElement(store, values.LogFileKey, root, "file"); err != nil {
		return err
	}
	if err := ApplyFromElement(store, values.VerbosityKey, root, "verbosity"); err != nil {
		return err
	}
	if err := ApplyFromElement(store, values.DistributeEnableKey, root, "distribute"); err != nil {
		return err
	}

	qosElement, ok := xmltree.FindChild(root, "qos")
	if !ok {
		return nil
	}
	return applyQoS(store, qosElement)
}

// publishSchema nests distribution settings under <publish>, whose presence
// alone enables distribution, and maps verbosity names to numeric levels.
type publishSchema struct{}

func (publishSchema) Name() string    { return SchemaPublish }
func (publishSchema) RootTag() string { return "security_log" }

func (publishSchema) Apply(root *xmltree.Element, store ports.PropertyStore) error {
	if err := ApplyFromElement(store, values.LogFileKey, root, "file"); err != nil {
		return err
	}

	verbosity := xmltree.FindChildText(root, "verbosity")
	switch verbosity.State {
	case xmltree.Empty:
		return apperrors.NewEmptyFormatError("verbosity")
	case xmltree.Found:
		v, err := values.NewVerbosity(verbosity.Text)
		if err != nil {
			return apperrors.NewUnknownVerbosityError(verbosity.Text)
		}
		// The numeric level goes under the same verbosity key as the other
		// schemas, not under the plugin's older logging.log_level name
		if err := UpsertProperty(store, values.VerbosityKey, v.Level()); err != nil {
			return err
		}
	}

	publish, ok := xmltree.FindChild(root, "publish")
	if !ok {
		return nil
	}
	if err := UpsertProperty(store, values.DistributeEnableKey, "true"); err != nil {
		return err
	}

	qosElement, ok := xmltree.FindChild(publish, "qos")
	if !ok {
		return nil
	}
	return applyQoS(store, qosElement)
}

// legacySchema reads the participant_security_log layout.
type legacySchema struct{}

func (legacySchema) Name() string    { return SchemaLegacy }
func (legacySchema) RootTag() string { return "participant_security_log" }

func (legacySchema) Apply(root *xmltree.Element, store ports.PropertyStore) error {
	if err := ApplyFromElement(store, values.LogFileKey, root, "log_file"); err != nil {
		return err
	}
	if err := ApplyFromElement(store, values.VerbosityKey, root, "log_verbosity"); err != nil {
		return err
	}

	distribute, ok := xmltree.FindChild(root, "distribute")
	if !ok {
		return nil
	}
	return ApplyFromElement(store, values.DistributeEnableKey, distribute, "enable")
}

// applyQoS applies the profile first and the explicit depth second, so an
// explicit depth always replaces the profile's.
func applyQoS(store ports.PropertyStore, qosElement *xmltree.Element) error {
	profile := xmltree.FindChildText(qosElement, "profile")
	switch profile.State {
	case xmltree.Empty:
		return apperrors.NewEmptyFormatError("profile")
	case xmltree.Found:
		p, ok := qos.Resolve(profile.Text)
		if !ok {
			return apperrors.NewUnknownProfileError(profile.Text)
		}
		if err := ApplyDepthFromProfile(store, p.Depth); err != nil {
			return err
		}
	}

	return ApplyFromElement(store, values.DistributeDepthKey, qosElement, "depth")
}
