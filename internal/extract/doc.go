// Package extract turns the free-text fields of upstream payloads into
// clean scalar values for a CaseRecord.
//
// The upstream API encodes structured data inside display strings: the
// parties of a case arrive as a single labelled compound string and
// dates arrive in several inconsistent formats. Every function here is
// total - malformed or missing input yields the placeholder (or, for
// dates, the raw input), never an error.
package extract
