// Package config loads and validates the application configuration.
//
// Configuration is assembled from three sources merged in priority order
// (earlier sources win for non-zero fields):
//
//  1. Environment variables (caarlos0/env tags on StructuredConfig)
//  2. Command-line flags
//  3. An optional JSON file, whose path comes from sources 1 and 2
//
// The merged result is validated once at startup; the service refuses to
// start without a token signing key and a database DSN. All other fields
// receive documented defaults.
package config
