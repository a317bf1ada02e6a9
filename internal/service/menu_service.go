package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brookxc/etmenu/internal/repositories"
	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/logger"
)

// menuSourceKind identifies which of the three raw menu shapes a restaurant
// carries. Exactly one source is used per restaurant; sources are never
// merged.
type menuSourceKind int

const (
	sourceCategories menuSourceKind = iota // embedded menuCategories array
	sourceEmbeddedItems                    // embedded flat menuItems array
	sourceExternal                         // separate menuItems collection
)

// resolveMenuSource picks the normalization path for a restaurant. Embedded
// categories win over embedded items, which win over the external collection.
func resolveMenuSource(restaurant *models.Restaurant) menuSourceKind {
	if len(restaurant.MenuCategories) > 0 {
		return sourceCategories
	}
	if len(restaurant.MenuItems) > 0 {
		return sourceEmbeddedItems
	}
	return sourceExternal
}

type MenuServiceInterface interface {
	NormalizeMenu(ctx context.Context, restaurant *models.Restaurant) ([]models.MenuItem, []string)
}

// MenuService derives a single flat, ordered list of normalized menu items
// from whichever raw source a restaurant provides, plus the distinct category
// names in first-seen order.
type MenuService struct {
	menuItemRepo repositories.MenuItemRepositoryInterface
	logger       *logger.Logger
}

func NewMenuService(menuItemRepo repositories.MenuItemRepositoryInterface, log *logger.Logger) *MenuService {
	return &MenuService{
		menuItemRepo: menuItemRepo,
		logger:       log.WithComponent("menu_service"),
	}
}

// NormalizeMenu produces the normalized menu of a restaurant. A nil
// restaurant (not found or locked upstream) yields empty results, and any
// read failure degrades to empty results as well; the menu page always
// renders, possibly without items.
func (s *MenuService) NormalizeMenu(ctx context.Context, restaurant *models.Restaurant) ([]models.MenuItem, []string) {
	if restaurant == nil {
		return []models.MenuItem{}, []string{}
	}

	restaurantID := restaurant.ID.Hex()

	var items []models.MenuItem
	switch resolveMenuSource(restaurant) {
	case sourceCategories:
		s.logger.Debug("Normalizing embedded menu categories",
			"restaurant_id", restaurantID,
			"categories", len(restaurant.MenuCategories))
		items = s.normalizeCategories(restaurantID, restaurant.MenuCategories)

	case sourceEmbeddedItems:
		s.logger.Debug("Normalizing embedded menu items",
			"restaurant_id", restaurantID,
			"items", len(restaurant.MenuItems))
		items = s.normalizeItems(restaurantID, restaurant.MenuItems)

	case sourceExternal:
		s.logger.Debug("No embedded menu, querying menu items collection",
			"restaurant_id", restaurantID)
		raw, err := s.menuItemRepo.FindByRestaurant(ctx, restaurantID)
		if err != nil {
			s.logger.Error("Failed to load external menu items", "restaurant_id", restaurantID, "error", err)
			return []models.MenuItem{}, []string{}
		}
		items = s.normalizeItems(restaurantID, raw)
	}

	categories := distinctCategories(items)
	s.logger.Info("Normalized menu",
		"restaurant_id", restaurantID,
		"items", len(items),
		"categories", len(categories))
	return items, categories
}

// normalizeCategories flattens the menuCategories shape, preserving category
// order and item order within each category. Items without an id get a
// synthesized positional one.
func (s *MenuService) normalizeCategories(restaurantID string, categories []models.RawMenuCategory) []models.MenuItem {
	items := []models.MenuItem{}
	for catIdx, category := range categories {
		categoryName := category.Name
		if categoryName == "" {
			categoryName = models.DefaultCategory
		}

		for itemIdx, raw := range category.Items {
			item := normalizeRawItem(restaurantID, raw)
			if item.ID == "" {
				item.ID = fmt.Sprintf("item-%d-%d", catIdx, itemIdx)
			}
			item.Category = categoryName
			items = append(items, item)
		}
	}
	return items
}

// normalizeItems maps a flat raw item list 1:1, preserving source order
func (s *MenuService) normalizeItems(restaurantID string, raw []models.RawMenuItem) []models.MenuItem {
	items := make([]models.MenuItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, normalizeRawItem(restaurantID, r))
	}
	return items
}

// normalizeRawItem applies the defaulting rules shared by every source shape.
// The image field deliberately defaults to "" rather than a placeholder; the
// client decides what a missing image looks like.
func normalizeRawItem(restaurantID string, raw models.RawMenuItem) models.MenuItem {
	item := models.MenuItem{
		ID:           rawItemID(raw.ID),
		RestaurantID: restaurantID,
		Name:         raw.Name,
		Description:  raw.Description,
		Price:        raw.Price,
		Image:        raw.Image,
		Category:     raw.Category,
	}

	if item.Name == "" {
		item.Name = models.DefaultItemName
	}
	if item.Category == "" {
		item.Category = models.DefaultCategory
	}

	return item
}

// rawItemID renders a loosely-typed source _id as a string. Source documents
// carry ObjectIDs, plain strings, or nothing at all.
func rawItemID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case primitive.ObjectID:
		if v.IsZero() {
			return ""
		}
		return v.Hex()
	default:
		return fmt.Sprint(v)
	}
}

// distinctCategories returns category names in first-occurrence order over a
// single left-to-right scan of the normalized items. This order drives the
// rendered tab order; it is never sorted.
func distinctCategories(items []models.MenuItem) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}
