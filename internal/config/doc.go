// Package config provides configuration loading, merging, and validation
// facilities for the tracker API server and the telemetry collector.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, after an optional .env file is loaded
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to whatever remains empty. The main entry points are
// [GetStructuredConfig] for the server and [GetCollectorConfig] for the
// collector.
package config
