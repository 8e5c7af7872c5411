// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers so that field names stay consistent across
// packages.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler, applies static
// attributes and wraps the result in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on every record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "lrubench"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//		logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "run finished", logger.Ops(n), logger.Duration(d))
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
