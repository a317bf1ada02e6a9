package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/brookxc/etmenu/pkg/database"
	"github.com/brookxc/etmenu/pkg/logger"
)

type DatabaseInspectorInterface interface {
	ListDatabaseNames(ctx context.Context) ([]string, error)
	ListCollectionNames(ctx context.Context, dbName string) ([]string, error)
	CountDocuments(ctx context.Context, dbName, collection string) (int64, error)
	CurrentDatabaseName() string
}

// DatabaseInspector exposes read-only store topology for the debug endpoint:
// database names, collection names, and document counts.
type DatabaseInspector struct {
	logger *logger.Logger
	db     *database.DB
}

func NewDatabaseInspector(log *logger.Logger, db *database.DB) *DatabaseInspector {
	return &DatabaseInspector{
		logger: log.WithComponent("database_inspector"),
		db:     db,
	}
}

// ListDatabaseNames lists every database on the connected deployment
func (r *DatabaseInspector) ListDatabaseNames(ctx context.Context) ([]string, error) {
	names, err := r.db.Client().ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to list databases", "error", err)
		return nil, fmt.Errorf("failed to list databases: %v", err)
	}
	return names, nil
}

// ListCollectionNames lists the collections of a database
func (r *DatabaseInspector) ListCollectionNames(ctx context.Context, dbName string) ([]string, error) {
	names, err := r.db.Client().Database(dbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to list collections", "database", dbName, "error", err)
		return nil, fmt.Errorf("failed to list collections of %s: %v", dbName, err)
	}
	return names, nil
}

// CountDocuments counts the documents in a collection
func (r *DatabaseInspector) CountDocuments(ctx context.Context, dbName, collection string) (int64, error) {
	count, err := r.db.Client().Database(dbName).Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to count documents", "database", dbName, "collection", collection, "error", err)
		return 0, fmt.Errorf("failed to count documents in %s.%s: %v", dbName, collection, err)
	}
	return count, nil
}

// CurrentDatabaseName returns the database name the service is configured with
func (r *DatabaseInspector) CurrentDatabaseName() string {
	return r.db.Name()
}
