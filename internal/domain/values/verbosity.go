package values

import (
	"fmt"
	"strconv"
)

// Verbosity is a syslog style secure logging level.
// Names are matched case-sensitively, as the plugin documents them.
type Verbosity struct {
	value VerbosityLevel
	name  string
}

// VerbosityLevel is the numeric representation written to the policy.
type VerbosityLevel int

const (
	VerbosityEmergency     VerbosityLevel = 0
	VerbosityAlert         VerbosityLevel = 1
	VerbosityCritical      VerbosityLevel = 2
	VerbosityError         VerbosityLevel = 3
	VerbosityWarning       VerbosityLevel = 4
	VerbosityNotice        VerbosityLevel = 5
	VerbosityInformational VerbosityLevel = 6
	VerbosityDebug         VerbosityLevel = 7
)

var supportedVerbosities = [...]Verbosity{
	{VerbosityEmergency, "EMERGENCY"},
	{VerbosityAlert, "ALERT"},
	{VerbosityCritical, "CRITICAL"},
	{VerbosityError, "ERROR"},
	{VerbosityWarning, "WARNING"},
	{VerbosityNotice, "NOTICE"},
	{VerbosityInformational, "INFORMATIONAL"},
	{VerbosityDebug, "DEBUG"},
}

// NewVerbosity looks up a verbosity by its exact name.
func NewVerbosity(s string) (Verbosity, error) {
	for _, v := range supportedVerbosities {
		if v.name == s {
			return v, nil
		}
	}
	return Verbosity{}, fmt.Errorf("%s is not a supported verbosity", s)
}

// Verbosities returns all supported verbosities ordered by level.
func Verbosities() []Verbosity {
	out := make([]Verbosity, len(supportedVerbosities))
	copy(out, supportedVerbosities[:])
	return out
}

// String returns the verbosity name.
func (v Verbosity) String() string {
	return v.name
}

// Level returns the decimal level text written to the policy.
func (v Verbosity) Level() string {
	return strconv.Itoa(int(v.value))
}

// IsZero reports whether v was never resolved.
func (v Verbosity) IsZero() bool {
	return v.name == ""
}
