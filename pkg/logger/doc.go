// Package logger builds *slog.Logger instances from functional options and
// injects request or run scoped values stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format, attaches static attributes and wraps the result in
// LogHandlerDecorator, which runs every registered ContextExtractor before a
// record is written.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "numcheck"),
//	    logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "checked", logger.Input(v), logger.Error(err))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty Attr for a nil error, so it can be passed unconditionally.
package logger
