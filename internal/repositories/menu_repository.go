package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/database"
	"github.com/brookxc/etmenu/pkg/logger"
)

const menuItemsCollection = "menuItems"

type MenuItemRepositoryInterface interface {
	FindByRestaurant(ctx context.Context, restaurantID string) ([]models.RawMenuItem, error)
}

// MenuItemRepository reads raw menu items from the external menuItems
// collection. It is consulted only for restaurants that do not embed their
// menu in the restaurant document itself.
type MenuItemRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewMenuItemRepository(log *logger.Logger, db *database.DB) *MenuItemRepository {
	return &MenuItemRepository{
		logger: log.WithComponent("menu_item_repository"),
		db:     db,
	}
}

// FindByRestaurant retrieves raw menu items for a restaurant in the store's
// natural return order. No sort is applied: downstream normalization must see
// the order the collection yields.
func (r *MenuItemRepository) FindByRestaurant(ctx context.Context, restaurantID string) ([]models.RawMenuItem, error) {
	r.logger.Debug("Querying menu items collection", "restaurant_id", restaurantID)

	cursor, err := r.db.Collection(menuItemsCollection).Find(ctx, bson.M{"restaurantId": restaurantID})
	if err != nil {
		r.logger.Error("Failed to query menu items", "restaurant_id", restaurantID, "error", err)
		return nil, fmt.Errorf("failed to query menu items: %v", err)
	}
	defer cursor.Close(ctx)

	items := []models.RawMenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		r.logger.Error("Failed to decode menu items", "restaurant_id", restaurantID, "error", err)
		return nil, fmt.Errorf("failed to decode menu items: %v", err)
	}

	r.logger.Info("Retrieved menu items from collection", "restaurant_id", restaurantID, "count", len(items))
	return items, nil
}
