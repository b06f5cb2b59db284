package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Google   GoogleConfig   `yaml:"google"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host        string `yaml:"host" env:"SERVER_HOST"`
	Port        int    `yaml:"port" env:"SERVER_PORT"`
	CORSOrigin  string `yaml:"cors_origin" env:"CORS_ORIGIN"`
	FrontendURL string `yaml:"frontend_url" env:"FRONTEND_URL"`
}

// DatabaseConfig holds MongoDB configuration
type DatabaseConfig struct {
	URI    string `yaml:"uri" env:"MONGODB_URI"`
	DBName string `yaml:"dbname" env:"MONGODB_DBNAME"`
}

// StorageConfig holds object-storage configuration
type StorageConfig struct {
	Region    string `yaml:"region" env:"STORAGE_REGION"`
	Bucket    string `yaml:"bucket" env:"STORAGE_BUCKET"`
	AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
	Endpoint  string `yaml:"endpoint" env:"STORAGE_ENDPOINT"` // optional, for S3-compatible hosts
	Folder    string `yaml:"folder" env:"STORAGE_FOLDER"`
}

// GoogleConfig holds OAuth client configuration
type GoogleConfig struct {
	ClientID     string `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `yaml:"redirect_url" env:"GOOGLE_REDIRECT_URL"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Load reads configuration from a YAML file, then applies environment
// variable overrides so secrets can stay out of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "photoalbum"
	}
	if cfg.Storage.Folder == "" {
		cfg.Storage.Folder = "uploads"
	}

	return &cfg, nil
}
