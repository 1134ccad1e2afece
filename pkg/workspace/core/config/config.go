package config

// Package config provides structures and utilities for managing workspace application configuration.

// EmbeddedConfig holds the content of the application's YAML configuration, typically embedded by main.go.
type EmbeddedConfig []byte

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the logging level (e.g., "INFO", "DEBUG").
	Level string `yaml:"level"`
}

// SystemConfig holds system-wide settings.
type SystemConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// AppConfig describes the application being loaded.
type AppConfig struct {
	// Name is the workspace name of the application (e.g., "app_a").
	Name string `yaml:"name"`
}

// WorkspaceConfig holds all configuration under the "workspace" top-level key.
type WorkspaceConfig struct {
	App    AppConfig    `yaml:"app"`
	System SystemConfig `yaml:"system"`
}

// Config is the root structure for the entire application configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			App: AppConfig{
				Name: "app",
			},
			System: SystemConfig{
				Logging: LoggingConfig{Level: "INFO"},
			},
		},
	}
}
