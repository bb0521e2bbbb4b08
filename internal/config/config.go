package config

import (
	"os"
	"strconv"

	"pdf-extract-service/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	Host           string
	ScratchDir     string
	MaxFileSize    int64
	LogLevel       string
	PDFEngine      string
	ExtractTimeout int64
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		Host:           getEnvOrDefault("HOST", ""),
		ScratchDir:     getEnvOrDefault("SCRATCH_DIR", os.TempDir()),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		PDFEngine:      getEnvOrDefault("PDF_ENGINE", "mupdf"),
		ExtractTimeout: getEnvInt64OrDefault("EXTRACT_TIMEOUT_SECONDS", 90),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetHost returns the listen host; empty means all interfaces
func (c *AppConfig) GetHost() string {
	return c.Host
}

// GetScratchDir returns the directory for staging uploaded documents
func (c *AppConfig) GetScratchDir() string {
	return c.ScratchDir
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFEngine returns the name of the text extraction engine
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetExtractTimeout returns the extraction deadline in seconds
func (c *AppConfig) GetExtractTimeout() int64 {
	return c.ExtractTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
