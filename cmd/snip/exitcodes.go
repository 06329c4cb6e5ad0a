package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config file)
	ExitDataError   = 3 // Data error (malformed request or import file)
	ExitNotFound    = 4 // Requested snippet does not exist
)
