package service

import (
	"context"

	"github.com/brookxc/etmenu/internal/repositories"
	"github.com/brookxc/etmenu/pkg/logger"
)

// systemDatabases are excluded from the overview
var systemDatabases = map[string]bool{
	"admin":  true,
	"local":  true,
	"config": true,
}

type CollectionInfo struct {
	Name          string `json:"name"`
	DocumentCount int64  `json:"documentCount"`
}

type DatabaseInfo struct {
	Name        string           `json:"name"`
	IsCurrentDB bool             `json:"isCurrentDb"`
	Collections []CollectionInfo `json:"collections"`
}

type DatabaseOverview struct {
	CurrentDBName string         `json:"currentDbName"`
	Databases     []DatabaseInfo `json:"databases"`
}

type DebugServiceInterface interface {
	GetDatabaseOverview(ctx context.Context) (*DatabaseOverview, error)
}

// DebugService assembles a store topology report: every non-system database,
// its collections, and per-collection document counts. Intended for
// connection troubleshooting, not for the public surface.
type DebugService struct {
	inspector repositories.DatabaseInspectorInterface
	logger    *logger.Logger
}

func NewDebugService(inspector repositories.DatabaseInspectorInterface, log *logger.Logger) *DebugService {
	return &DebugService{
		inspector: inspector,
		logger:    log.WithComponent("debug_service"),
	}
}

// GetDatabaseOverview reports non-system databases with their collections and
// document counts, and marks the database this service is configured to use.
func (s *DebugService) GetDatabaseOverview(ctx context.Context) (*DatabaseOverview, error) {
	currentDBName := s.inspector.CurrentDatabaseName()

	names, err := s.inspector.ListDatabaseNames(ctx)
	if err != nil {
		s.logger.Error("Failed to enumerate databases", "error", err)
		return nil, err
	}

	databases := []DatabaseInfo{}
	for _, name := range names {
		if systemDatabases[name] {
			continue
		}

		collectionNames, err := s.inspector.ListCollectionNames(ctx, name)
		if err != nil {
			s.logger.Error("Failed to enumerate collections", "database", name, "error", err)
			return nil, err
		}

		collections := []CollectionInfo{}
		for _, collectionName := range collectionNames {
			count, err := s.inspector.CountDocuments(ctx, name, collectionName)
			if err != nil {
				s.logger.Error("Failed to count documents",
					"database", name,
					"collection", collectionName,
					"error", err)
				return nil, err
			}
			collections = append(collections, CollectionInfo{
				Name:          collectionName,
				DocumentCount: count,
			})
		}

		databases = append(databases, DatabaseInfo{
			Name:        name,
			IsCurrentDB: name == currentDBName,
			Collections: collections,
		})
	}

	s.logger.Info("Assembled database overview", "databases", len(databases))
	return &DatabaseOverview{
		CurrentDBName: currentDBName,
		Databases:     databases,
	}, nil
}
