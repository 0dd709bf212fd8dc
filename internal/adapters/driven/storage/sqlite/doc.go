// Package sqlite persists run history in a SQLite database.
package sqlite
