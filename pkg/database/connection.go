package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brookxc/etmenu/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connection defaults
const (
	DefaultDatabaseName   = "restaurantDirectory"
	DefaultMaxPoolSize    = 10
	DefaultConnectTimeout = 5 * time.Second
	DefaultSocketTimeout  = 45 * time.Second
)

// ErrMissingURI is returned when no MongoDB connection string is configured.
// The connection string is the one piece of configuration without a usable
// default, so startup fails hard on it.
var ErrMissingURI = errors.New("MongoDB connection string is required")

type Config struct {
	URI      string
	Database string

	// Connection pool settings (optional)
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
}

// DefaultConfig returns a database configuration with sensible defaults.
// The URI has no default and must be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Database:       DefaultDatabaseName,
		MaxPoolSize:    DefaultMaxPoolSize,
		ConnectTimeout: DefaultConnectTimeout,
		SocketTimeout:  DefaultSocketTimeout,
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.URI == "" {
		return ErrMissingURI
	}
	return nil
}

// DB wraps the MongoDB client together with the configured database name
type DB struct {
	client *mongo.Client
	dbName string
	logger *logger.Logger
}

// NewConnection establishes a MongoDB connection with the given config
func NewConnection(config Config, log *logger.Logger) (*DB, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Database == "" {
		config.Database = DefaultDatabaseName
	}
	if config.MaxPoolSize == 0 {
		config.MaxPoolSize = DefaultMaxPoolSize
	}
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = DefaultConnectTimeout
	}
	if config.SocketTimeout == 0 {
		config.SocketTimeout = DefaultSocketTimeout
	}

	log = log.WithComponent("database")
	log.Debug("Connecting to MongoDB",
		"database", config.Database,
		"max_pool_size", config.MaxPoolSize)

	opts := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(config.MaxPoolSize).
		SetConnectTimeout(config.ConnectTimeout).
		SetSocketTimeout(config.SocketTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	return &DB{
		client: client,
		dbName: config.Database,
		logger: log,
	}, nil
}

// Client returns the underlying MongoDB client
func (db *DB) Client() *mongo.Client {
	return db.client
}

// Name returns the configured database name
func (db *DB) Name() string {
	return db.dbName
}

// Database returns a handle to the configured database
func (db *DB) Database() *mongo.Database {
	return db.client.Database(db.dbName)
}

// Collection returns a handle to a collection in the configured database
func (db *DB) Collection(name string) *mongo.Collection {
	return db.Database().Collection(name)
}

// HealthCheck verifies the database connection is alive
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultConnectTimeout)
	defer cancel()

	if err := db.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("database health check failed: %v", err)
	}
	return nil
}

// Close disconnects the client. Call once at shutdown.
func (db *DB) Close(ctx context.Context) error {
	db.logger.Debug("Closing MongoDB connection")
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close MongoDB connection: %v", err)
	}
	return nil
}
