// Package reports renders finished runs into operator-facing files.
//
// Every writer produces one timestamped file per run under the output
// directory. The file contents are in Spanish, matching the audience
// of the reports; field names follow the vocabulary of the upstream
// service (radicado, demandante, juzgado).
package reports
