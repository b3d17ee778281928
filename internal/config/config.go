package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the tool
type Config struct {
	Panel PanelConfig
	App   AppConfig
}

// PanelConfig holds panel backend configuration
type PanelConfig struct {
	Backend     string
	APIURL      string
	APIUser     string
	APIToken    string
	APITimeout  time.Duration
	InsecureTLS bool
	UAPIBin     string
	WHMAPIBin   string
	UsersDir    string
}

// AppConfig holds application configuration
type AppConfig struct {
	LogLevel string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	config := &Config{}

	// Panel configuration
	apiTimeout, err := time.ParseDuration(getEnv("WHM_API_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WHM_API_TIMEOUT: %w", err)
	}

	insecureTLS, err := strconv.ParseBool(getEnv("WHM_API_INSECURE_TLS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid WHM_API_INSECURE_TLS: %w", err)
	}

	config.Panel = PanelConfig{
		Backend:     getEnv("PANEL_BACKEND", "cli"),
		APIURL:      getEnv("WHM_API_URL", "https://127.0.0.1:2087"),
		APIUser:     getEnv("WHM_API_USER", "root"),
		APIToken:    getEnv("WHM_API_TOKEN", ""),
		APITimeout:  apiTimeout,
		InsecureTLS: insecureTLS,
		UAPIBin:     getEnv("CP_UAPI_BIN", "uapi"),
		WHMAPIBin:   getEnv("CP_WHMAPI_BIN", "whmapi1"),
		UsersDir:    getEnv("CP_USERS_DIR", "/var/cpanel/users"),
	}

	// Application configuration
	config.App = AppConfig{
		LogLevel: getEnv("LOG_LEVEL", "error"),
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errors []string

	if err := c.validatePanel(); err != nil {
		errors = append(errors, fmt.Sprintf("panel: %v", err))
	}

	if err := c.validateApp(); err != nil {
		errors = append(errors, fmt.Sprintf("application: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// validatePanel validates panel backend configuration
func (c *Config) validatePanel() error {
	switch c.Panel.Backend {
	case "cli":
		if c.Panel.UAPIBin == "" {
			return fmt.Errorf("CP_UAPI_BIN is required")
		}
		if c.Panel.WHMAPIBin == "" {
			return fmt.Errorf("CP_WHMAPI_BIN is required")
		}
		if c.Panel.UsersDir == "" {
			return fmt.Errorf("CP_USERS_DIR is required")
		}
	case "api":
		if c.Panel.APIURL == "" {
			return fmt.Errorf("WHM_API_URL is required")
		}
		if c.Panel.APIUser == "" {
			return fmt.Errorf("WHM_API_USER is required")
		}
		if c.Panel.APIToken == "" {
			return fmt.Errorf("WHM_API_TOKEN is required when PANEL_BACKEND is api")
		}
	default:
		return fmt.Errorf("PANEL_BACKEND must be one of: cli, api")
	}

	if c.Panel.APITimeout < 0 {
		return fmt.Errorf("WHM_API_TIMEOUT cannot be negative")
	}

	return nil
}

// validateApp validates application configuration
func (c *Config) validateApp() error {
	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error", "fatal"}
	validLogLevel := false
	for _, level := range validLogLevels {
		if c.App.LogLevel == level {
			validLogLevel = true
			break
		}
	}
	if !validLogLevel {
		return fmt.Errorf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", "))
	}

	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
