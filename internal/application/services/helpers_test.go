package services

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/reglet-dev/seclog/internal/domain/policy"
	"github.com/reglet-dev/seclog/internal/domain/values"
	"github.com/stretchr/testify/require"
)

// writeLoggingXML wraps body in a versioned security_log root and writes it
// to a temp file.
func writeLoggingXML(t *testing.T, body string) string {
	t.Helper()
	return writeRawXML(t, "<?xml version='1.0' encoding='UTF-8'?>\n<security_log version='1'>\n"+body+"\n</security_log>\n")
}

func writeRawXML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logging.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestTranslator(t *testing.T, schema string) *Translator {
	t.Helper()
	tr, err := NewTranslator(TranslatorOptions{
		Schema:            schema,
		VersionConstraint: DefaultVersionConstraint,
		Logger:            slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
	require.NoError(t, err)
	return tr
}

// propertyValue returns the value of key, or nil when absent.
func propertyValue(store *policy.PropertyPolicy, key values.PropertyKey) *string {
	p, ok := store.Lookup(key.String())
	if !ok {
		return nil
	}
	return &p.Value
}

func ptr(s string) *string {
	return &s
}

var errRejected = errors.New("rejected by container")

// rejectingStore refuses to add one property name.
type rejectingStore struct {
	*policy.PropertyPolicy
	reject values.PropertyKey
}

func (s *rejectingStore) Add(name, value string, propagate bool) error {
	if name == s.reject.String() {
		return errRejected
	}
	return s.PropertyPolicy.Add(name, value, propagate)
}
