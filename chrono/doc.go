// Package chrono holds the cross-cutting helpers shared by the lib-chrono subpackages.
//
// It provides environment-driven configuration (GetenvOrDefault,
// SetConfigFromEnvVars) and logger propagation through context:
//
//	ctx = chrono.ContextWithLogger(ctx, logger)
//	util, err := dateutil.NewFromEnv(ctx)
//
// The date/time utility itself lives in the dateutil subpackage.
package chrono
