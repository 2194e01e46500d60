package includefolder

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Generation completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic or broken invariant
	ExitConfigError  = 10 // Invalid configuration, flags or identifiers
	ExitStaleOutput  = 12 // Checked-in generated output is out of date
	ExitPathNotFound = 14 // Path to embed does not exist
)

const (
	// ConfigFileName is the project file listing generation targets.
	ConfigFileName = "includefolder.yaml"

	// GeneratedSuffix is appended to the snake-cased root name to build the
	// default output file name.
	GeneratedSuffix = "_gen.go"

	// GeneratedHeader is the first line of every generated file. It matches the
	// convention recognised by go vet and gopls.
	GeneratedHeader = "// Code generated by includefolder. DO NOT EDIT."

	// ImportPath is the import path generated files use for this package.
	ImportPath = "github.com/vvka-141/includefolder/pkg/includefolder"

	// FilesMethod is the name of the Directory method on generated structs.
	// No embedded field may use it.
	FilesMethod = "Files"
)
