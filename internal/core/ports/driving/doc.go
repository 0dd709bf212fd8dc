// Package driving defines the interfaces through which the outside
// world drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them, and the CLI adapter calls them.
package driving
