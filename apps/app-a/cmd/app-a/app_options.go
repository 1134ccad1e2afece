package main

import (
	"io"

	"go.uber.org/fx"

	"github.com/jbmonorepo/monorepo/apps/app-a/app"
	"github.com/jbmonorepo/monorepo/pkg/packagea"
	config "github.com/jbmonorepo/monorepo/pkg/workspace/core/config"
	logger "github.com/jbmonorepo/monorepo/pkg/workspace/support/util/logger"
)

// GetApplicationOptions loads the configuration, applies its log level and returns the Fx
// options of app_a. out receives the diagnostic lines.
func GetApplicationOptions(envFilePath string, embeddedConfig config.EmbeddedConfig, out io.Writer) ([]fx.Option, error) {
	cfg, err := config.LoadConfig(envFilePath, embeddedConfig)
	if err != nil {
		return nil, err
	}
	logger.SetLogLevel(cfg.Workspace.System.Logging.Level)
	logger.Debugf("Configuration loaded for %s. Log level set to: %s", cfg.Workspace.App.Name, cfg.Workspace.System.Logging.Level)

	return applicationOptions(out, packagea.Module), nil
}

// applicationOptions assembles the container. libraries are the workspace packages app_a imports.
func applicationOptions(out io.Writer, libraries ...fx.Option) []fx.Option {
	var options []fx.Option

	options = append(options, fx.Supply(
		fx.Annotate(out, fx.As(new(io.Writer)), fx.ResultTags(`name:"diagnosticOutput"`)),
	))
	options = append(options, logger.Module)
	options = append(options, config.Module)
	options = append(options, libraries...)
	options = append(options, app.Module)

	return options
}
