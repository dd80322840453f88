package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/pmehta/healthtrack/logger"
)

// Config holds the deployable settings. Every field has an environment
// override so a config file is optional for local runs.
type Config struct {
	Port           string   `yaml:"port"`
	DataFile       string   `yaml:"data_file"`
	Model          string   `yaml:"model"`
	APIKey         string   `yaml:"api_key"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Read reads the configuration from a YAML file.
func Read(filePath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.Error(err))
		return nil, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	return &config, nil
}

// Load builds the effective config: defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment overrides.
func Load() *Config {
	cfg := &Config{
		Port:           "8080",
		DataFile:       "health_data.json",
		AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileCfg, err := Read(path)
		if err == nil {
			if fileCfg.Port != "" {
				cfg.Port = fileCfg.Port
			}
			if fileCfg.DataFile != "" {
				cfg.DataFile = fileCfg.DataFile
			}
			if fileCfg.Model != "" {
				cfg.Model = fileCfg.Model
			}
			if fileCfg.APIKey != "" {
				cfg.APIKey = fileCfg.APIKey
			}
			if len(fileCfg.AllowedOrigins) > 0 {
				cfg.AllowedOrigins = fileCfg.AllowedOrigins
			}
		}
	}

	cfg.Port = GetEnv("PORT", cfg.Port)
	cfg.DataFile = GetEnv("DATA_FILE", cfg.DataFile)
	cfg.Model = GetEnv("LLM_MODEL", cfg.Model)
	cfg.APIKey = GetEnv("API_KEY", cfg.APIKey)

	return cfg
}

// GetEnv returns the environment value for key, or fallback when unset.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
