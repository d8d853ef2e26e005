package lagoon

// Version information for the lagoon module.
const (
	// Version is the current version of the lagoon module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
