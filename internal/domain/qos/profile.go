// Package qos holds the fixed table of named QoS profiles that a secure
// logging configuration may reference.
package qos

// HistoryKind is the history QoS policy kind of a profile.
type HistoryKind string

// ReliabilityKind is the reliability QoS policy kind of a profile.
type ReliabilityKind string

// DurabilityKind is the durability QoS policy kind of a profile.
type DurabilityKind string

const (
	HistorySystemDefault HistoryKind = "SYSTEM_DEFAULT"
	HistoryKeepLast      HistoryKind = "KEEP_LAST"

	ReliabilitySystemDefault ReliabilityKind = "SYSTEM_DEFAULT"
	ReliabilityReliable      ReliabilityKind = "RELIABLE"
	ReliabilityBestEffort    ReliabilityKind = "BEST_EFFORT"

	DurabilitySystemDefault DurabilityKind = "SYSTEM_DEFAULT"
	DurabilityVolatile      DurabilityKind = "VOLATILE"
)

// DepthSystemDefault means "let the middleware pick the depth".
const DepthSystemDefault uint64 = 0

// Profile is a named bundle of QoS defaults.
// Only Depth is written by the translator; the other fields are informational.
type Profile struct {
	Name        string          `json:"name" yaml:"name"`
	History     HistoryKind     `json:"history" yaml:"history"`
	Depth       uint64          `json:"depth" yaml:"depth"`
	Reliability ReliabilityKind `json:"reliability" yaml:"reliability"`
	Durability  DurabilityKind  `json:"durability" yaml:"durability"`
}

var builtinProfiles = [...]Profile{
	{"SENSOR_DATA", HistoryKeepLast, 5, ReliabilityBestEffort, DurabilityVolatile},
	{"PARAMETERS", HistoryKeepLast, 1000, ReliabilityReliable, DurabilityVolatile},
	{"DEFAULT", HistoryKeepLast, 10, ReliabilityReliable, DurabilityVolatile},
	{"SERVICES_DEFAULT", HistoryKeepLast, 10, ReliabilityReliable, DurabilityVolatile},
	{"PARAMETER_EVENTS", HistoryKeepLast, 1000, ReliabilityReliable, DurabilityVolatile},
	{"SYSTEM_DEFAULT", HistorySystemDefault, DepthSystemDefault, ReliabilitySystemDefault, DurabilitySystemDefault},
}

// Resolve returns the profile registered under name. Matching is exact and
// case-sensitive.
func Resolve(name string) (Profile, bool) {
	for _, p := range builtinProfiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Profiles returns a copy of the registry in declaration order.
func Profiles() []Profile {
	out := make([]Profile, len(builtinProfiles))
	copy(out, builtinProfiles[:])
	return out
}

// Names returns the registered profile names in declaration order.
func Names() []string {
	names := make([]string, len(builtinProfiles))
	for i, p := range builtinProfiles {
		names[i] = p.Name
	}
	return names
}
