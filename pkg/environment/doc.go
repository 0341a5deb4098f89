// Package environment names the deployment environment of the onboarding
// binary and carries it through context.Context into structured logs.
//
//	env := environment.Parse(cfg.AppEnv)
//	ctx = environment.WithContext(ctx, env)
//	log := logger.New(
//	    logger.WithEnvironment(env, "onboard"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
// Missing values result in the zero value ("").
package environment
