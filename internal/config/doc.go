// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Unset values are then filled with defaults and the result is validated.
// The main entry points are [GetStructuredConfig] for the HTTP server and
// [GetEnvConfig] for binaries that do not accept configuration flags.
package config
