package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationError_Kinds(t *testing.T) {
	cause := errors.New("container full")

	tests := []struct {
		name     string
		err      error
		kind     error
		kindName string
		message  string
	}{
		{"missing root", NewMissingRootElementError("security_log", nil), ErrMissingRootElement, "MissingRootElement", "logger xml file missing 'security_log'"},
		{"empty", NewEmptyFormatError("file"), ErrEmptyFormat, "EmptyFormat", "failed to set security logging file: improper format"},
		{"profile", NewUnknownProfileError("INVALID_PROFILE"), ErrUnknownProfile, "UnknownProfile", "INVALID_PROFILE is not a supported profile"},
		{"verbosity", NewUnknownVerbosityError("INVALID_VERBOSITY"), ErrUnknownVerbosity, "UnknownVerbosity", "INVALID_VERBOSITY is not a supported verbosity"},
		{"write", NewWriteFailureError("depth", cause), ErrWriteFailure, "WriteFailure", "container full"},
		{"numeric", NewNumericFormatError(42), ErrNumericFormatFailure, "NumericFormatFailure", "unable to convert 42 to string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Contains(t, tt.err.Error(), tt.message)
			assert.Equal(t, tt.kindName, KindName(tt.err))

			for _, other := range Kinds() {
				if other != tt.kind {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}
}

func TestTranslationError_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := fmt.Errorf("apply: %w", NewMissingRootElementError("security_log", cause))

	assert.ErrorIs(t, err, ErrMissingRootElement)
	assert.ErrorIs(t, err, cause)

	var te *TranslationError
	assert.ErrorAs(t, err, &te)
	assert.Equal(t, "security_log", te.Field)
}

func TestKindName_NotTranslationError(t *testing.T) {
	assert.Equal(t, "", KindName(errors.New("boom")))
	assert.Equal(t, "", KindName(nil))
}

func TestConfigurationError(t *testing.T) {
	cause := errors.New("bad yaml")
	err := NewConfigurationError("system", "failed to parse", cause)

	assert.Equal(t, "configuration error (system): failed to parse: bad yaml", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "configuration error (system): missing", NewConfigurationError("system", "missing", nil).Error())
}
