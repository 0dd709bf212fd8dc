// Package input reads filing identifiers from operator-supplied files.
package input
