package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Fit    FitConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// UploadConfig holds file upload limits
type UploadConfig struct {
	MaxBytes int64
}

// FitConfig holds curve fitting configuration
type FitConfig struct {
	MaxIterations int
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("MAX_UPLOAD_BYTES", 20*1024*1024)
	viper.SetDefault("FIT_MAX_ITERATIONS", 200)

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	// Try to read .env file for the current environment
	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	// Environment variables override .env file values
	viper.AutomaticEnv()

	// Bind specific environment variable names
	viper.BindEnv("PORT")
	viper.BindEnv("ENVIRONMENT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("MAX_UPLOAD_BYTES")
	viper.BindEnv("FIT_MAX_ITERATIONS")

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")
	config.Upload.MaxBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	config.Fit.MaxIterations = viper.GetInt("FIT_MAX_ITERATIONS")

	return &config, nil
}
