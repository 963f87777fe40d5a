// Package logging constructs the slog loggers used across recipeconv.
//
// Two output formats are supported: a human-oriented console format with
// colored level tags when the destination is a terminal, and line-delimited
// JSON for machine consumption.
package logging
