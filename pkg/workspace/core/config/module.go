package config

import "go.uber.org/fx"

// Module provides the process Environment to Fx.
// *Config itself is supplied by the application after LoadConfig.
var Module = fx.Options(
	fx.Provide(fx.Annotate(
		NewOsEnvironment,
		fx.As(new(Environment)),
	)),
)
