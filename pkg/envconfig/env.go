package envconfig

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/brookxc/etmenu/pkg/logger"
)

// LoadEnvFile loads environment variables from the given file. A missing file
// is not fatal; values already present in the environment always win.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// GetEnv returns the value of an environment variable or a default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetLogLevel returns the configured log level
func GetLogLevel() logger.LogLevel {
	switch GetEnv("LOG_LEVEL", "info") {
	case "debug":
		return logger.LevelDebug
	case "warn":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}
