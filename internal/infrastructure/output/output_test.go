package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/magiconair/properties"
	"github.com/reglet-dev/seclog/internal/application/dto"
	"github.com/reglet-dev/seclog/internal/domain/policy"
	"github.com/reglet-dev/seclog/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false

	require.NoError(t, formatter.Format(createTestReport()))

	out := buf.String()
	assert.Contains(t, out, "Schema: flat")
	assert.Contains(t, out, "Duration: 1.5s")
	assert.Contains(t, out, "✓ /etc/dds/ok.xml")
	assert.Contains(t, out, "⚠ /etc/dds/partial.xml")
	assert.Contains(t, out, "✗ /etc/dds/missing.xml")
	assert.Contains(t, out, "Status: PARTIAL")
	assert.Contains(t, out, "Error [UnknownProfile]: failed to set security logging profile")
	assert.Contains(t, out, "- com.rti.serv.secure.logging.log_file = /var/log/sec.log")
	assert.Contains(t, out, "Files:      3 total")
	assert.Contains(t, out, "Applied:  1")
	assert.Contains(t, out, "Partial:  1")
	assert.Contains(t, out, "Failed:   1")
	assert.NotContains(t, out, "\033[")
}

func TestTableFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(createTestReport()))

	assert.Contains(t, buf.String(), colorGreen+"✓"+colorReset)
	assert.Contains(t, buf.String(), colorRed+"✗"+colorReset)
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false

	require.NoError(t, formatter.Format(&dto.ApplyReport{Schema: "flat"}))
	assert.Contains(t, buf.String(), "No files applied.")
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, indent := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, NewJSONFormatter(&buf, indent).Format(createTestReport()))
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
		assert.Equal(t, indent, strings.Contains(buf.String(), "\n  "))

		var decoded struct {
			Schema  string `json:"schema"`
			Results []struct {
				Path         string            `json:"path"`
				InvocationID string            `json:"invocation_id"`
				Status       string            `json:"status"`
				ErrorKind    string            `json:"error_kind"`
				Properties   []policy.Property `json:"properties"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

		assert.Equal(t, "flat", decoded.Schema)
		require.Len(t, decoded.Results, 3)
		assert.Equal(t, "applied", decoded.Results[0].Status)
		assert.NotEmpty(t, decoded.Results[0].InvocationID)
		assert.Len(t, decoded.Results[0].Properties, 2)
		assert.Equal(t, "UnknownProfile", decoded.Results[1].ErrorKind)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(createTestReport()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "seclog", decoded["tool"])
	results, ok := decoded["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 3)
	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/etc/dds/ok.xml", first["path"])
	assert.Equal(t, "applied", first["status"])
}

func TestPropertiesFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPropertiesFormatter(&buf).Format(createTestReport()))

	want := `# /etc/dds/ok.xml (applied)
com.rti.serv.secure.logging.log_file=/var/log/sec.log
com.rti.serv.secure.logging.distribute.writer_history_depth=10

# /etc/dds/partial.xml (partial)
# error: failed to set security logging profile: FAST is not a supported profile
com.rti.serv.secure.logging.log_file=b.log

# /etc/dds/missing.xml (failed)
# error: failed to set security logging security_log: logger xml file missing 'security_log'
`
	assert.Equal(t, want, buf.String())
}

func TestPropertiesFormatter_RoundTrip(t *testing.T) {
	props := []policy.Property{
		{Name: "plain", Value: "value"},
		{Name: "windows.path", Value: `C:\logs\sec.log`},
		{Name: "leading.space", Value: " /var/log/My Secure.log "},
		{Name: "two.lines", Value: "two\nlines"},
		{Name: "separators", Value: "a=b:c#d!e"},
		{Name: "colon:key", Value: "y"},
		{Name: "a key", Value: "x"},
		{Name: "placeholder", Value: "${HOME}/sec.log"},
	}
	report := &dto.ApplyReport{Results: []dto.FileResult{{
		Path:       "/etc/dds/odd.xml",
		Status:     values.StatusApplied,
		Properties: props,
	}}}

	var buf bytes.Buffer
	require.NoError(t, NewPropertiesFormatter(&buf).Format(report))

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	loaded, err := loader.LoadBytes(buf.Bytes())
	require.NoError(t, err)

	want := make([]string, 0, len(props))
	for _, p := range props {
		want = append(want, p.Name)
		got, ok := loaded.Get(p.Name)
		require.True(t, ok, p.Name)
		assert.Equal(t, p.Value, got, p.Name)
	}
	assert.Equal(t, want, loaded.Keys())
	assert.True(t, strings.HasPrefix(buf.String(), "# /etc/dds/odd.xml (applied)\n"))
}

func TestJUnitFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJUnitFormatter(&buf).Format(createTestReport()))
	assert.True(t, strings.HasPrefix(buf.String(), xml.Header))

	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &suites))

	assert.Equal(t, "seclog", suites.Name)
	assert.Equal(t, 3, suites.Tests)
	assert.Equal(t, 1, suites.Failures)
	assert.Equal(t, 1, suites.Errors)
	require.Len(t, suites.TestSuites, 1)

	cases := suites.TestSuites[0].TestCases
	require.Len(t, cases, 3)
	assert.Equal(t, "/etc/dds/ok.xml", cases[0].Name)
	assert.Equal(t, "seclog.flat", cases[0].ClassName)
	assert.Nil(t, cases[0].Failure)
	assert.Nil(t, cases[0].Error)
	assert.Contains(t, cases[0].SystemOut, "com.rti.serv.secure.logging.log_file=/var/log/sec.log")

	require.NotNil(t, cases[1].Failure)
	assert.Equal(t, "UnknownProfile", cases[1].Failure.Type)

	require.NotNil(t, cases[2].Error)
	assert.Equal(t, "MissingRootElement", cases[2].Error.Type)
}

func TestFormatters_StatusCoverage(t *testing.T) {
	// Every status renders in the table without falling back to "?"
	formatter := NewTableFormatter(&bytes.Buffer{})
	for _, s := range []values.Status{values.StatusApplied, values.StatusPartial, values.StatusFailed} {
		symbol, _ := formatter.getStatusInfo(s)
		assert.NotEqual(t, "?", symbol, s)
	}
}
