// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: Severity, Code, Message, a primary
// source.Span and optional Notes. Phases emit through a Reporter so that
// storage (Bag) and rendering (internal/diagfmt) stay decoupled.
//
// Passes that return Go errors use *Error, which carries the same Code and
// an optional span. Errors joined with errors.Join are flattened by Errors
// and can be forwarded to a Reporter with ReportErrors.
//
// Codes are grouped by range: LEX 1000, SYN 2000, SEM 3000, IO 4000, IR 9000.
package diag
