package main

// Exit codes returned by the netalgo binary.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config file, bad override)
	ExitDataError   = 3 // Data error (malformed graph file, graph unsuitable for the algorithm)
)
