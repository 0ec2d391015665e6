// Package config provides configuration management for the filetally CLI.
//
// Settings come only from command-line flags bound to a viper instance;
// filetally reads no configuration file and no environment variables.
package config

// Default configuration values for filetally.
const (
	// DefaultFormat is the report format used when none is requested.
	DefaultFormat = "plain"

	// DefaultLogLevel keeps stderr limited to diagnostics unless asked otherwise.
	DefaultLogLevel = "warn"

	// VerboseLogLevel is the log level selected by --verbose.
	VerboseLogLevel = "debug"
)
