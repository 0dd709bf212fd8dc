// Package connectors holds the clients for external services. Each
// connector owns its HTTP session, rate limiting and error
// classification, and exposes domain types to the core.
package connectors
