// Package environment names the deployment environment a binary runs in and
// carries it through context.Context and structured logs.
//
// Parse normalizes the usual short forms ("dev", "stage", "prod") so that
// values read from APP_ENV can be compared against the Development, Staging
// and Production constants directly:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx = environment.WithContext(ctx, env)
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // adds env=<value>
//
// Unknown values are kept as-is; an empty string parses to Development.
package environment
