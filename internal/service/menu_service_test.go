package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

type fakeMenuItemRepo struct {
	items []models.RawMenuItem
	err   error
	calls int
}

func (f *fakeMenuItemRepo) FindByRestaurant(ctx context.Context, restaurantID string) ([]models.RawMenuItem, error) {
	f.calls++
	return f.items, f.err
}

func TestNormalizeMenu_MenuCategories(t *testing.T) {
	repo := &fakeMenuItemRepo{}
	svc := NewMenuService(repo, newTestLogger())

	restaurant := &models.Restaurant{
		ID: primitive.NewObjectID(),
		MenuCategories: []models.RawMenuCategory{
			{Name: "Breakfast", Items: []models.RawMenuItem{
				{Name: "Chechebsa", Price: 120},
				{Name: "Ful", Description: "Fava bean stew", Price: 90},
			}},
			{Name: "Drinks", Items: []models.RawMenuItem{
				{ID: "espresso-1", Name: "Macchiato", Price: 40},
			}},
		},
	}

	t.Run("Should preserve category and item order", func(t *testing.T) {
		items, categories := svc.NormalizeMenu(context.Background(), restaurant)

		require.Len(t, items, 3)
		assert.Equal(t, []string{"Breakfast", "Drinks"}, categories)
		assert.Equal(t, "Chechebsa", items[0].Name)
		assert.Equal(t, "Ful", items[1].Name)
		assert.Equal(t, "Macchiato", items[2].Name)
	})

	t.Run("Should synthesize positional ids for items without one", func(t *testing.T) {
		items, _ := svc.NormalizeMenu(context.Background(), restaurant)

		assert.Equal(t, "item-0-0", items[0].ID)
		assert.Equal(t, "item-0-1", items[1].ID)
		assert.Equal(t, "espresso-1", items[2].ID)
	})

	t.Run("Should attach the restaurant id and the category name", func(t *testing.T) {
		items, _ := svc.NormalizeMenu(context.Background(), restaurant)

		for _, item := range items {
			assert.Equal(t, restaurant.ID.Hex(), item.RestaurantID)
		}
		assert.Equal(t, "Breakfast", items[0].Category)
		assert.Equal(t, "Drinks", items[2].Category)
	})

	t.Run("Should not consult the external collection", func(t *testing.T) {
		repo.calls = 0
		svc.NormalizeMenu(context.Background(), restaurant)
		assert.Zero(t, repo.calls)
	})
}

func TestNormalizeMenu_Defaults(t *testing.T) {
	svc := NewMenuService(&fakeMenuItemRepo{}, newTestLogger())

	restaurant := &models.Restaurant{
		ID: primitive.NewObjectID(),
		MenuCategories: []models.RawMenuCategory{
			{Name: "", Items: []models.RawMenuItem{{}}},
		},
	}

	items, categories := svc.NormalizeMenu(context.Background(), restaurant)

	require.Len(t, items, 1)
	assert.Equal(t, "Unnamed Item", items[0].Name)
	assert.Equal(t, "", items[0].Description)
	assert.Equal(t, 0.0, items[0].Price)
	assert.Equal(t, "", items[0].Image, "missing images stay empty, no placeholder")
	assert.Equal(t, "Uncategorized", items[0].Category)
	assert.Equal(t, []string{"Uncategorized"}, categories)
}

func TestNormalizeMenu_EmbeddedItems(t *testing.T) {
	repo := &fakeMenuItemRepo{}
	svc := NewMenuService(repo, newTestLogger())

	restaurant := &models.Restaurant{
		ID: primitive.NewObjectID(),
		MenuItems: []models.RawMenuItem{
			{ID: "a", Name: "Tibs", Price: 250, Category: "Mains"},
			{ID: "b", Name: "Kitfo", Price: 280, Category: "Mains"},
			{ID: "c", Name: "Tej", Price: 60, Category: "Drinks"},
		},
	}

	items, categories := svc.NormalizeMenu(context.Background(), restaurant)

	require.Len(t, items, 3)
	assert.Equal(t, []string{"Mains", "Drinks"}, categories, "first-seen order, not sorted")
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, items[i].ID)
		assert.Equal(t, restaurant.ID.Hex(), items[i].RestaurantID)
	}
	assert.Zero(t, repo.calls)
}

func TestNormalizeMenu_ExternalCollection(t *testing.T) {
	objectID := primitive.NewObjectID()
	repo := &fakeMenuItemRepo{
		items: []models.RawMenuItem{
			{ID: objectID, Name: "Shiro", Price: 110, Category: "Fasting"},
			{Name: "Beyaynetu", Price: 130, Category: "Fasting"},
		},
	}
	svc := NewMenuService(repo, newTestLogger())

	restaurant := &models.Restaurant{ID: primitive.NewObjectID()}

	items, categories := svc.NormalizeMenu(context.Background(), restaurant)

	assert.Equal(t, 1, repo.calls, "external collection queried exactly once")
	require.Len(t, items, 2)
	assert.Equal(t, objectID.Hex(), items[0].ID)
	assert.Equal(t, "Shiro", items[0].Name)
	assert.Equal(t, "Beyaynetu", items[1].Name)
	assert.Equal(t, []string{"Fasting"}, categories)
}

func TestNormalizeMenu_SourcePriority(t *testing.T) {
	repo := &fakeMenuItemRepo{
		items: []models.RawMenuItem{{Name: "From collection"}},
	}
	svc := NewMenuService(repo, newTestLogger())

	// Both embedded shapes present: categories win, nothing is merged.
	restaurant := &models.Restaurant{
		ID: primitive.NewObjectID(),
		MenuCategories: []models.RawMenuCategory{
			{Name: "Specials", Items: []models.RawMenuItem{{Name: "Doro Wot"}}},
		},
		MenuItems: []models.RawMenuItem{{Name: "Embedded item"}},
	}

	items, _ := svc.NormalizeMenu(context.Background(), restaurant)

	require.Len(t, items, 1)
	assert.Equal(t, "Doro Wot", items[0].Name)
	assert.Zero(t, repo.calls)
}

func TestNormalizeMenu_Degradation(t *testing.T) {
	t.Run("Should return empty results for a missing restaurant", func(t *testing.T) {
		repo := &fakeMenuItemRepo{}
		svc := NewMenuService(repo, newTestLogger())

		items, categories := svc.NormalizeMenu(context.Background(), nil)

		assert.Empty(t, items)
		assert.Empty(t, categories)
		assert.Zero(t, repo.calls)
	})

	t.Run("Should return empty results when the external read fails", func(t *testing.T) {
		repo := &fakeMenuItemRepo{err: errors.New("store unavailable")}
		svc := NewMenuService(repo, newTestLogger())

		items, categories := svc.NormalizeMenu(context.Background(), &models.Restaurant{ID: primitive.NewObjectID()})

		assert.Empty(t, items)
		assert.Empty(t, categories)
	})
}
