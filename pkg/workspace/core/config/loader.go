package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/exception"
	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/logger"
)

const moduleName = "config"

// LoadConfig loads configuration from the .env file, the embedded YAML and environment variables,
// in increasing order of precedence over the defaults from NewConfig.
// It is expected to be called once during application startup.
//
// Parameters:
//
//	envFilePath: The path to the .env file. A missing file is logged and ignored.
//	embeddedConfig: The embedded configuration bytes. ${VAR} placeholders are expanded before parsing.
func LoadConfig(envFilePath string, embeddedConfig EmbeddedConfig) (*Config, error) {
	loadEnvFile(envFilePath)

	cfg := NewConfig()

	var yamlConfig Config
	expanded := NewOsEnvironment().Expand(embeddedConfig)
	if err := yaml.Unmarshal(expanded, &yamlConfig); err != nil {
		return nil, exception.NewWorkspaceError(moduleName, "failed to unmarshal embedded config", err)
	}
	mergeConfig(cfg, &yamlConfig)

	if err := loadStructFromEnv(reflect.ValueOf(cfg).Elem(), ""); err != nil {
		return nil, exception.NewWorkspaceError(moduleName, "failed to load config from environment variables", err)
	}
	return cfg, nil
}

// loadEnvFile loads variables from envFilePath without overriding ones already set.
func loadEnvFile(envFilePath string) {
	if envFilePath == "" {
		if err := godotenv.Load(); err != nil {
			logger.Debugf(".env file not found or could not be loaded: %v", err)
		}
		return
	}
	if err := godotenv.Load(envFilePath); err != nil {
		logger.Warnf(".env file (%s) not found or could not be loaded: %v", envFilePath, err)
	}
}

// mergeConfig copies every non-zero value of source into dest.
func mergeConfig(dest, source *Config) {
	if source.Workspace.App.Name != "" {
		dest.Workspace.App.Name = source.Workspace.App.Name
	}
	if source.Workspace.System.Logging.Level != "" {
		dest.Workspace.System.Logging.Level = source.Workspace.System.Logging.Level
	}
}

// loadStructFromEnv recursively loads values into a struct from environment variables.
// The variable name is the upper-cased path of yaml tags joined by "_"
// (e.g., WORKSPACE_SYSTEM_LOGGING_LEVEL).
func loadStructFromEnv(val reflect.Value, prefix string) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)
		yamlTag := strings.SplitN(fieldType.Tag.Get("yaml"), ",", 2)[0]
		if yamlTag == "" || yamlTag == "-" {
			continue
		}
		envVarName := strings.ToUpper(prefix + yamlTag)

		if field.Kind() == reflect.Struct {
			if err := loadStructFromEnv(field, envVarName+"_"); err != nil {
				return err
			}
			continue
		}

		envValue, exists := os.LookupEnv(envVarName)
		if !exists {
			continue
		}
		if err := setField(field, envValue); err != nil {
			return fmt.Errorf("failed to set field '%s' from env var '%s': %w", fieldType.Name, envVarName, err)
		}
	}
	return nil
}

func setField(field reflect.Value, value string) error {
	if !field.CanSet() {
		return nil
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(intValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(boolValue)
	}
	return nil
}
