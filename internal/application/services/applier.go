package services

import (
	"strconv"

	apperrors "github.com/reglet-dev/seclog/internal/application/errors"
	"github.com/reglet-dev/seclog/internal/application/ports"
	"github.com/reglet-dev/seclog/internal/domain/values"
	"github.com/reglet-dev/seclog/internal/infrastructure/xmltree"
)

// depthBufferSize bounds the decimal rendering of a history depth.
const depthBufferSize = 256

// UpsertProperty writes value under key, replacing any previous entry so the
// store never holds two entries for one key.
func UpsertProperty(store ports.PropertyStore, key values.PropertyKey, value string) error {
	// Overwrite existing properties, so remove it if it already exists
	store.Remove(key.String())

	if err := store.Add(key.String(), value, false); err != nil {
		return apperrors.NewWriteFailureError(key.Field(), err)
	}
	return nil
}

// ApplyFromElement copies the text of the tag child of el into key.
// A missing child is not an error; a child without text is.
func ApplyFromElement(store ports.PropertyStore, key values.PropertyKey, el *xmltree.Element, tag string) error {
	lookup := xmltree.FindChildText(el, tag)
	switch lookup.State {
	case xmltree.Absent:
		return nil
	case xmltree.Empty:
		return apperrors.NewEmptyFormatError(tag)
	}

	return UpsertProperty(store, key, lookup.Text)
}

// ApplyDepthFromProfile writes a profile's history depth as decimal text.
func ApplyDepthFromProfile(store ports.PropertyStore, depth uint64) error {
	var buf [depthBufferSize]byte
	text, err := formatDepth(buf[:0], depth)
	if err != nil {
		return err
	}

	return UpsertProperty(store, values.DistributeDepthKey, text)
}

// formatDepth renders depth into buf without growing it.
func formatDepth(buf []byte, depth uint64) (string, error) {
	out := strconv.AppendUint(buf, depth, 10)
	if len(out) > cap(buf) {
		return "", apperrors.NewNumericFormatError(depth)
	}
	return string(out), nil
}
