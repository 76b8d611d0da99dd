// Package logging assembles the structured slog loggers used across seqq.
//
// It owns level and format plumbing for the console and JSON handlers and
// provides attribute helpers plus a no-op logger for tests and wiring code
// that cannot fail. Prefer these constructors over hand-rolled slog setup so
// every component emits log lines with the same shape.
package logging
