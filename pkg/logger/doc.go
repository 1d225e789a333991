// Package logger builds *slog.Logger values with functional options and a few
// attribute helpers so log keys stay consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("ODASH_ENV"), "odash"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "file downloaded", logger.URL(u), logger.Bytes(n))
//
// Defaults are JSON at info level on stdout. WithEnvironment switches to text
// at debug level for anything that is not production or staging.
//
// Helper packages in this module never log on their own. Components that do
// I/O, such as download.HTTPTrigger, accept a *slog.Logger and fall back to
// Discard.
package logger
