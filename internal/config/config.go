package config

import (
	"fmt"
	"log"
	"os"

	"showcase-api/internal/utils"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// UploadConfig holds upload validation and storage settings
type UploadConfig struct {
	MaxFileSize      string   `yaml:"max_file_size"`
	AllowedMimeTypes []string `yaml:"allowed_mime_types"`
	Folder           string   `yaml:"folder"`

	// MaxFileSizeBytes is derived from MaxFileSize at load time
	MaxFileSizeBytes int64 `yaml:"-"`
}

// MainConfig holds the root configuration
type MainConfig struct {
	Upload UploadConfig `yaml:"upload"`
}

var (
	Config MainConfig
)

// LoadConfig loads the configuration from config/upload.yaml
func LoadConfig() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	// Read config file
	data, err := os.ReadFile("config/upload.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Upload.MaxFileSize == "" {
		cfg.Upload.MaxFileSize = "300MB"
	}
	maxSize, err := utils.ParseSizeString(cfg.Upload.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid max_file_size: %w", err)
	}
	cfg.Upload.MaxFileSizeBytes = maxSize

	if cfg.Upload.Folder == "" {
		cfg.Upload.Folder = "student-works"
	}

	// Store config globally
	Config = cfg

	log.Println("Upload configuration loaded successfully from config/upload.yaml")
	return nil
}

// GetConfig returns the current configuration
func GetConfig() MainConfig {
	return Config
}
