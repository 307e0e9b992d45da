// Package config provides configuration loading, merging, and validation
// facilities for the terminal client.
//
// Configuration is assembled from multiple sources. Higher-priority sources
// override non-zero fields of lower-priority ones:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated client view.
package config
