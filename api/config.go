package api

import (
	"os"
	"strconv"
	"strings"
	"time"

	pdfPkg "pdfnest/pdf"
)

// Config holds application configuration
type Config struct {
	Port           string
	MaxFileSize    int64
	MaxFiles       int
	TempDir        string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	OfficeBinary   string
	ConvertTimeout time.Duration
}

// LoadConfig reads configuration from the environment, falling back to
// defaults for unset or malformed values.
func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", DefaultPort),
		MaxFileSize:    getEnvInt64("MAX_FILE_SIZE", DefaultMaxFileSize),
		MaxFiles:       int(getEnvInt64("MAX_FILES", DefaultMaxFiles)),
		TempDir:        getEnv("TEMP_DIR", DefaultTempDir),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		OfficeBinary:   getEnv("OFFICE_BINARY", DefaultOfficeBinary),
		ConvertTimeout: getEnvDuration("CONVERT_TIMEOUT", pdfPkg.ConvertTimeout),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
