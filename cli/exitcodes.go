package cli

// Process exit codes. A child started by run may also pass its own code through.
const (
	ExitSuccess  = 0 // Success
	ExitError    = 1 // Storage, config, clipboard or spawn failure
	ExitUsage    = 2 // Missing or malformed flag, unknown subcommand
	ExitNotFound = 3 // Index outside the stored commands
)
