package values

// PropertyKey names a property the secure logging plugin reads from the
// participant property policy.
type PropertyKey string

// Property names from table 10.1 of the RTI Security Plugins getting started guide.
const (
	LogFileKey          PropertyKey = "com.rti.serv.secure.logging.log_file"
	VerbosityKey        PropertyKey = "com.rti.serv.secure.logging.verbosity"
	DistributeEnableKey PropertyKey = "com.rti.serv.secure.logging.distribute.enable"
	DistributeDepthKey  PropertyKey = "com.rti.serv.secure.logging.distribute.writer_history_depth"
)

// PropertyKeys returns every key the translator may write, in write order.
func PropertyKeys() []PropertyKey {
	return []PropertyKey{LogFileKey, VerbosityKey, DistributeEnableKey, DistributeDepthKey}
}

// String returns the raw property name.
func (k PropertyKey) String() string {
	return string(k)
}

// Field returns the short human readable name used in error messages.
func (k PropertyKey) Field() string {
	switch k {
	case LogFileKey:
		return "file"
	case VerbosityKey:
		return "verbosity"
	case DistributeEnableKey:
		return "distribute"
	case DistributeDepthKey:
		return "depth"
	default:
		return string(k)
	}
}
