// Package ramajudicial implements the lookup client for the Rama
// Judicial de Colombia case-consultation API.
//
// One case lookup is a sequence of three dependent calls: the
// identifier search (which yields the internal process id and the
// privacy flag), the process detail, and the docket ("actuaciones").
// Every call returns either a decoded payload or a classified error -
// expected upstream conditions (404, 5xx, 429, timeouts, malformed
// JSON) are never surfaced as panics or raw transport errors.
//
// The client owns one persistent HTTP session for connection reuse and
// an optional sliding-window rate limiter that transparently paces
// every outbound call.
package ramajudicial
