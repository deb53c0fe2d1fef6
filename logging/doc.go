// Package logging builds structured loggers on the standard library log/slog.
//
// Loggers write JSON by default, or logfmt-style text for interactive use.
// The confiddle command line tool and the fx integration both obtain their
// logger here.
package logging
