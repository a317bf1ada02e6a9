package service

import (
	"context"
	"strings"

	"github.com/brookxc/etmenu/internal/repositories"
	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/logger"
)

type RestaurantServiceInterface interface {
	ListRestaurants(ctx context.Context, query string) []*models.Restaurant
	GetRestaurant(ctx context.Context, id string) *models.Restaurant
}

// RestaurantService serves the public directory. Failed reads degrade to
// empty results rather than erroring: the directory page always renders.
type RestaurantService struct {
	restaurantRepo repositories.RestaurantRepositoryInterface
	logger         *logger.Logger
}

func NewRestaurantService(restaurantRepo repositories.RestaurantRepositoryInterface, log *logger.Logger) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		logger:         log.WithComponent("restaurant_service"),
	}
}

// ListRestaurants returns all unlocked restaurants, optionally filtered by a
// case-insensitive substring match on the name.
func (s *RestaurantService) ListRestaurants(ctx context.Context, query string) []*models.Restaurant {
	restaurants, err := s.restaurantRepo.ListUnlocked(ctx)
	if err != nil {
		s.logger.Error("Failed to list restaurants", "error", err)
		return []*models.Restaurant{}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return restaurants
	}

	needle := strings.ToLower(query)
	filtered := []*models.Restaurant{}
	for _, restaurant := range restaurants {
		if strings.Contains(strings.ToLower(restaurant.Name), needle) {
			filtered = append(filtered, restaurant)
		}
	}

	s.logger.Debug("Filtered restaurants by name", "query", query, "matched", len(filtered))
	return filtered
}

// GetRestaurant returns an unlocked restaurant by id, or nil when the id is
// malformed, the restaurant does not exist, it is locked, or the read fails.
func (s *RestaurantService) GetRestaurant(ctx context.Context, id string) *models.Restaurant {
	restaurant, err := s.restaurantRepo.GetUnlockedByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get restaurant", "restaurant_id", id, "error", err)
		return nil
	}
	return restaurant
}
