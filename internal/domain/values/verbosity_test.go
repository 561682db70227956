package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewVerbosity(t *testing.T) {
	tests := []struct {
		input     string
		wantLevel string
		wantErr   bool
	}{
		{"EMERGENCY", "0", false},
		{"ALERT", "1", false},
		{"CRITICAL", "2", false},
		{"ERROR", "3", false},
		{"WARNING", "4", false},
		{"NOTICE", "5", false},
		{"INFORMATIONAL", "6", false},
		{"DEBUG", "7", false},
		{"debug", "", true},
		{" ERROR", "", true},
		{"", "", true},
		{"INVALID_VERBOSITY", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := NewVerbosity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "is not a supported verbosity")
				assert.True(t, v.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, v.Level())
			assert.Equal(t, tt.input, v.String())
		})
	}
}

func Test_Verbosities_ReturnsCopy(t *testing.T) {
	all := Verbosities()
	require.Len(t, all, 8)
	all[0] = Verbosity{}

	v, err := NewVerbosity("EMERGENCY")
	require.NoError(t, err)
	assert.Equal(t, "0", v.Level())
}
