package includefolder

// Logger provides a pluggable logging interface for generation runs.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages, including recovered per-entry scan failures.
	Error(format string, args ...interface{})
}
