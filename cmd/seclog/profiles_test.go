package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/seclog/internal/domain/qos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProfiles_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runProfiles(&buf, "table"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(qos.Profiles())+1)
	assert.Equal(t, []string{"NAME", "DEPTH", "HISTORY", "RELIABILITY", "DURABILITY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"SENSOR_DATA", "5", "KEEP_LAST", "BEST_EFFORT", "VOLATILE"}, strings.Fields(lines[1]))
}

func TestRunProfiles_Structured(t *testing.T) {
	var jsonBuf bytes.Buffer
	require.NoError(t, runProfiles(&jsonBuf, "json"))
	var fromJSON []qos.Profile
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	assert.Equal(t, qos.Profiles(), fromJSON)

	var yamlBuf bytes.Buffer
	require.NoError(t, runProfiles(&yamlBuf, "yaml"))
	var fromYAML []qos.Profile
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Equal(t, qos.Profiles(), fromYAML)
}

func TestRunProfiles_InvalidFormat(t *testing.T) {
	err := runProfiles(&bytes.Buffer{}, "sarif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
