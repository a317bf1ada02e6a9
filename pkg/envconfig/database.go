package envconfig

import (
	"strconv"
	"time"

	"github.com/brookxc/etmenu/pkg/database"
)

// LoadDatabaseConfig loads MongoDB configuration from environment variables.
// MONGODB_URI has no default; database.Config.Validate rejects its absence.
func LoadDatabaseConfig() database.Config {
	config := database.DefaultConfig()

	config.URI = GetEnv("MONGODB_URI", "")

	if name := GetEnv("MONGODB_DB_NAME", ""); name != "" {
		config.Database = name
	}

	// Connection pool settings
	if poolStr := GetEnv("MONGODB_MAX_POOL_SIZE", ""); poolStr != "" {
		if pool, err := strconv.ParseUint(poolStr, 10, 64); err == nil && pool > 0 {
			config.MaxPoolSize = pool
		}
	}

	if connectTimeoutStr := GetEnv("MONGODB_CONNECT_TIMEOUT", ""); connectTimeoutStr != "" {
		if connectTimeout, err := time.ParseDuration(connectTimeoutStr); err == nil {
			config.ConnectTimeout = connectTimeout
		}
	}

	if socketTimeoutStr := GetEnv("MONGODB_SOCKET_TIMEOUT", ""); socketTimeoutStr != "" {
		if socketTimeout, err := time.ParseDuration(socketTimeoutStr); err == nil {
			config.SocketTimeout = socketTimeout
		}
	}

	return config
}
