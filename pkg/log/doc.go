// Package log provides the logging abstraction used by lagoon components.
//
// Library code logs through the [Logger] interface so callers can plug in
// their own backend. A zerolog adapter and a no-op logger are provided:
//
//	logger := log.NewZerologAdapter(zerolog.InfoLevel)
//	res, err := lagoon.Solve(text, lagoon.WithLogger(logger))
//
// Tests and embedders that want silence use [NewNoopLogger], which is also
// the default when no logger is configured.
package log
