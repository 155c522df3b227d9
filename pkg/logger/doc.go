// Package logger builds the structured logger used across payloadkit.
//
// New returns a *slog.Logger configured with functional options: output
// format (text or json), level, static attributes and context extractors that
// copy request-scoped values, such as the request id, into every record.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "payloadd"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "payload rejected",
//		logger.Resource("teams"),
//		logger.Kind("missing_mandatory_fields"),
//		logger.Fields([]string{"team_type"}),
//	)
//
// Attribute helpers keep key names consistent. Error returns an empty
// attribute for nil errors so callers can log without a nil check.
package logger
