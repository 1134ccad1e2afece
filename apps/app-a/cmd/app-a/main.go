package main

import (
	"context"
	"os"

	_ "embed"

	"go.uber.org/fx"

	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/logger"
)

// embeddedConfig holds resources/application.yaml.
//
//go:embed resources/application.yaml
var embeddedConfig []byte

// main loads app_a. Loading happens while the Fx container is built; a ResolutionError
// there terminates the process with a non-zero exit code.
func main() {
	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath == "" {
		envFilePath = ".env"
	}

	options, err := GetApplicationOptions(envFilePath, embeddedConfig, os.Stdout)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	fxApp := fx.New(options...)
	if err := fxApp.Err(); err != nil {
		logger.Fatalf("Application load failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()

	if err := fxApp.Start(ctx); err != nil {
		logger.Fatalf("Application start failed: %v", err)
	}
	if err := fxApp.Stop(ctx); err != nil {
		logger.Errorf("Application stop failed: %v", err)
	}
}
