package arbor

// DebugConfig controls debug logging through the runtime's logger.
// All output goes to slog at debug level.
type DebugConfig struct {
	// LogWrites logs every signal write with its subscriber count.
	// Default: false.
	LogWrites bool

	// LogRuns logs each computation run with timing information.
	// Useful for finding hot effects. Default: false.
	LogRuns bool
}

// Debug is the global debug configuration.
// Modify this at application startup to enable debugging output.
var Debug = DebugConfig{}
