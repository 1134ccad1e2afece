package logger

import "go.uber.org/fx"

// Module replaces fx's default console logger with FxLoggerAdapter.
var Module = fx.Options(
	fx.WithLogger(NewFxLoggerAdapter),
)
