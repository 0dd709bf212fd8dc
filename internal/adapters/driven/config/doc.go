// Package config loads and persists application configuration.
//
// Configuration lives in a TOML file under the consulta config
// directory (~/.consulta by default). Environment variables prefixed
// CONSULTA_ override individual file values, which lets operators
// tweak one run without editing the file.
package config
