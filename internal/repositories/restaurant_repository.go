package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/database"
	"github.com/brookxc/etmenu/pkg/logger"
)

const restaurantsCollection = "restaurants"

type RestaurantRepositoryInterface interface {
	ListUnlocked(ctx context.Context) ([]*models.Restaurant, error)
	GetUnlockedByID(ctx context.Context, id string) (*models.Restaurant, error)
}

type RestaurantRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewRestaurantRepository(log *logger.Logger, db *database.DB) *RestaurantRepository {
	return &RestaurantRepository{
		logger: log.WithComponent("restaurant_repository"),
		db:     db,
	}
}

// notLockedFilter matches restaurants visible to public browsing: the lock
// flag is either absent or explicitly false.
func notLockedFilter() bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"locked": bson.M{"$exists": false}},
			bson.M{"locked": false},
		},
	}
}

// ListUnlocked retrieves all unlocked restaurants, most recently updated first
func (r *RestaurantRepository) ListUnlocked(ctx context.Context) ([]*models.Restaurant, error) {
	r.logger.Debug("Retrieving unlocked restaurants")

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.db.Collection(restaurantsCollection).Find(ctx, notLockedFilter(), opts)
	if err != nil {
		r.logger.Error("Failed to query restaurants", "error", err)
		return nil, fmt.Errorf("failed to query restaurants: %v", err)
	}
	defer cursor.Close(ctx)

	restaurants := []*models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		r.logger.Error("Failed to decode restaurants", "error", err)
		return nil, fmt.Errorf("failed to decode restaurants: %v", err)
	}

	r.logger.Info("Retrieved unlocked restaurants", "count", len(restaurants))
	return restaurants, nil
}

// GetUnlockedByID retrieves a single unlocked restaurant. A restaurant that
// does not exist or is locked yields (nil, nil); the two cases are
// indistinguishable on purpose.
func (r *RestaurantRepository) GetUnlockedByID(ctx context.Context, id string) (*models.Restaurant, error) {
	r.logger.Debug("Retrieving restaurant", "restaurant_id", id)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Warn("Malformed restaurant id", "restaurant_id", id, "error", err)
		return nil, fmt.Errorf("malformed restaurant id %q: %v", id, err)
	}

	filter := notLockedFilter()
	filter["_id"] = objectID

	restaurant := &models.Restaurant{}
	err = r.db.Collection(restaurantsCollection).FindOne(ctx, filter).Decode(restaurant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Info("Restaurant not found or locked", "restaurant_id", id)
			return nil, nil
		}
		r.logger.Error("Failed to retrieve restaurant", "restaurant_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve restaurant %s: %v", id, err)
	}

	return restaurant, nil
}
