// Package config loads the application configuration from a TOML file
// with PLUMA_* environment variable overrides layered on top. Missing
// files are not an error; defaults apply.
package config
