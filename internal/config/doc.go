// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources merged with mergo; a
// field set by an earlier source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// After merging, defaults are filled in and invariants are checked. The main
// entry point is [GetStructuredConfig].
package config
