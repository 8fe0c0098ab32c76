// Package logging assembles the slog loggers used by cutblanc.
//
// New builds a logger around a console handler that prints one line per
// record as "LEVEL message key=value ...". When the output is a terminal the
// level label is coloured with lipgloss. NewNop returns a logger that
// discards everything, for tests and library callers that pass no logger.
package logging
