// Package logger builds the structured slog.Logger used by every recordkit
// component and provides attribute constructors that keep key names
// consistent across packages.
//
// New creates a *slog.Logger configured by Option functions. Options select
// the output format (text or json), the minimum level, static attributes and
// ContextExtractor callbacks that copy request-scoped values (for example the
// HTTP request id) into every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "recordkit"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//
//	log.InfoContext(ctx, "batch processed",
//	    logger.BatchID(id),
//	    logger.Counts(total, accepted, failed),
//	)
//
// # Configuration
//
// ParseLevel and ParseFormat turn configuration strings into option values
// and report unknown names as errors. WithFormat panics on an invalid Format
// so misconfiguration surfaces at startup.
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil:
//
//	log.Info("tables loaded", logger.Error(err))
package logger
