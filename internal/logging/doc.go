// Package logging assembles the structured slog loggers used across
// fruitdata.
//
// It owns level and format plumbing for the console and JSON handlers and
// exposes a no-op logger for tests and wiring code that cannot fail. Prefer
// these constructors over hand-rolled slog setup so every component emits
// diagnostics with the same shape.
package logging
