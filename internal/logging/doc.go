// Package logging builds the application's slog loggers.
//
// Two output formats are supported: a human-oriented console format
// (timestamp, level, component prefix, message, key=value attrs) and JSON
// for machine consumption. Components obtain a child logger through
// NewComponentLogger so every record carries a stable component attribute.
// Tests use NewNop to silence output.
package logging
