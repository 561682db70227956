package services

import (
	"context"
	"testing"

	apperrors "github.com/reglet-dev/seclog/internal/application/errors"
	"github.com/reglet-dev/seclog/internal/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor(t *testing.T) {
	s, err := SchemaFor("")
	require.NoError(t, err)
	assert.Equal(t, SchemaFlat, s.Name())

	for _, name := range SchemaNames() {
		s, err := SchemaFor(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err = SchemaFor("nested")
	require.Error(t, err)
	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), `unknown schema "nested"`)
}

func TestSchemaNames(t *testing.T) {
	assert.Equal(t, []string{SchemaFlat, SchemaLegacy, SchemaPublish}, SchemaNames())
}

func TestApplyLoggingConfiguration_Publish(t *testing.T) {
	tests := []struct {
		name string
		body string
		want wantProps
	}{
		{
			name: "verbosity mapped to level",
			body: "<verbosity>WARNING</verbosity>",
			want: wantProps{verbosity: ptr("4")},
		},
		{
			name: "debug verbosity",
			body: "<verbosity>DEBUG</verbosity>",
			want: wantProps{verbosity: ptr("7")},
		},
		{
			name: "publish presence enables distribution",
			body: "<publish/>",
			want: wantProps{distribute: ptr("true")},
		},
		{
			name: "publish qos profile",
			body: "<publish><qos><profile>PARAMETER_EVENTS</profile></qos></publish>",
			want: wantProps{distribute: ptr("true"), depth: ptr("1000")},
		},
		{
			name: "publish qos explicit depth wins",
			body: "<publish><qos><profile>DEFAULT</profile><depth>3</depth></qos></publish>",
			want: wantProps{distribute: ptr("true"), depth: ptr("3")},
		},
		{
			name: "top-level qos is ignored",
			body: "<qos><depth>3</depth></qos>",
			want: wantProps{},
		},
		{
			name: "everything",
			body: "<file>/var/log/sec.log</file><verbosity>ERROR</verbosity><publish><qos><depth>7</depth></qos></publish>",
			want: wantProps{file: ptr("/var/log/sec.log"), verbosity: ptr("3"), distribute: ptr("true"), depth: ptr("7")},
		},
	}

	tr := newTestTranslator(t, SchemaPublish)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := policy.New()
			err := tr.ApplyLoggingConfiguration(context.Background(), writeLoggingXML(t, tt.body), store)
			require.NoError(t, err)
			assertProps(t, store, tt.want)
		})
	}
}

func TestApplyLoggingConfiguration_PublishFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		want    wantProps
	}{
		{
			name:    "unknown verbosity",
			body:    "<file>f</file><verbosity>LOUD</verbosity>",
			wantErr: apperrors.ErrUnknownVerbosity,
			want:    wantProps{file: ptr("f")},
		},
		{
			name:    "verbosity names are case sensitive",
			body:    "<verbosity>debug</verbosity>",
			wantErr: apperrors.ErrUnknownVerbosity,
		},
		{
			name:    "empty verbosity",
			body:    "<verbosity>  </verbosity>",
			wantErr: apperrors.ErrEmptyFormat,
		},
		{
			name:    "unknown profile under publish",
			body:    "<publish><qos><profile>FAST</profile></qos></publish>",
			wantErr: apperrors.ErrUnknownProfile,
			want:    wantProps{distribute: ptr("true")},
		},
	}

	tr := newTestTranslator(t, SchemaPublish)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := policy.New()
			err := tr.ApplyLoggingConfiguration(context.Background(), writeLoggingXML(t, tt.body), store)
			require.ErrorIs(t, err, tt.wantErr)
			assertProps(t, store, tt.want)
		})
	}
}

func TestApplyLoggingConfiguration_Legacy(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		wantErr error
		want    wantProps
	}{
		{
			name: "all fields",
			xml: `<participant_security_log>
  <log_file>sec.log</log_file>
  <log_verbosity>NOTICE</log_verbosity>
  <distribute><enable>false</enable></distribute>
</participant_security_log>`,
			want: wantProps{file: ptr("sec.log"), verbosity: ptr("NOTICE"), distribute: ptr("false")},
		},
		{
			name: "distribute without enable",
			xml:  "<participant_security_log><distribute/></participant_security_log>",
			want: wantProps{},
		},
		{
			name:    "empty enable",
			xml:     "<participant_security_log><log_file>a</log_file><distribute><enable/></distribute></participant_security_log>",
			wantErr: apperrors.ErrEmptyFormat,
			want:    wantProps{file: ptr("a")},
		},
		{
			name:    "flat root is not accepted",
			xml:     "<security_log><file>a</file></security_log>",
			wantErr: apperrors.ErrMissingRootElement,
		},
	}

	tr := newTestTranslator(t, SchemaLegacy)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := policy.New()
			err := tr.ApplyLoggingConfiguration(context.Background(), writeRawXML(t, tt.xml), store)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assertProps(t, store, tt.want)
		})
	}
}

func TestApplyLoggingConfiguration_FlatRejectsLegacyRoot(t *testing.T) {
	store := policy.New()
	path := writeRawXML(t, "<participant_security_log><log_file>a</log_file></participant_security_log>")

	err := newTestTranslator(t, SchemaFlat).ApplyLoggingConfiguration(context.Background(), path, store)

	require.ErrorIs(t, err, apperrors.ErrMissingRootElement)
	assert.Zero(t, store.Len())
}
