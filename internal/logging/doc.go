// Package logging builds the application's slog loggers.
//
// Loggers write to stdout and, when a log directory is configured, to a log
// file inside it. The console format uses slog's text handler; json emits one
// object per line for ingestion elsewhere. Components receive a *slog.Logger
// from the composition root; Nop provides a discard logger for tests.
package logging
