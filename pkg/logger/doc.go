// Package logger builds the structured logger of the onboarding binary on top
// of log/slog.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithEnvironment / WithDevelopment / WithProduction select a level and
//     format preset and tag records with the service and env names;
//   - WithFormat, WithLevel, WithOutput and WithHandlerOptions override them;
//   - WithAttr attaches static attributes;
//   - WithContextExtractors / WithContextValue inject attributes pulled from
//     context.Context every time a record is handled.
//
// The default output is stderr so logs never interleave with the prompts on
// stdout.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.AppEnv), "onboard"),
//	    logger.WithOutput(logFile),
//	    logger.WithContextValue("session_id", sessionKey{}),
//	)
//	log.InfoContext(ctx, "step rejected",
//	    logger.Step(2),
//	    logger.Fields(errs.Keys(step)),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Helpers such as
// Error, Reference and SessionID return an empty Attr for nil input, so they
// can be passed without a nil check. Field helpers take keys only; form
// values may contain identity numbers and are never logged.
package logger
