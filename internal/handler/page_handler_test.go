package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brookxc/etmenu/internal/view"
	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/colorutil"
	"github.com/brookxc/etmenu/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

type stubRestaurantService struct {
	restaurants []*models.Restaurant
	byID        map[string]*models.Restaurant
}

func (s *stubRestaurantService) ListRestaurants(ctx context.Context, query string) []*models.Restaurant {
	return s.restaurants
}

func (s *stubRestaurantService) GetRestaurant(ctx context.Context, id string) *models.Restaurant {
	return s.byID[id]
}

type stubMenuService struct {
	items      []models.MenuItem
	categories []string
}

func (s *stubMenuService) NormalizeMenu(ctx context.Context, restaurant *models.Restaurant) ([]models.MenuItem, []string) {
	return s.items, s.categories
}

func newPageHandler(t *testing.T, restaurants *stubRestaurantService, menus *stubMenuService) *PageHandler {
	t.Helper()
	log := newTestLogger()
	colors := colorutil.NewDeriver(log)
	renderer, err := view.NewRenderer(colors, log)
	require.NoError(t, err)
	return NewPageHandler(restaurants, menus, renderer, colors, log)
}

func TestDirectory(t *testing.T) {
	h := newPageHandler(t,
		&stubRestaurantService{restaurants: []*models.Restaurant{
			{ID: primitive.NewObjectID(), Name: "Kategna", Location: "Bole"},
		}},
		&stubMenuService{})

	t.Run("Should render the restaurant list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Directory(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Kategna")
	})

	t.Run("Should mark pages uncacheable", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Directory(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("Should render not-found for unmatched paths", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Directory(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRestaurantDetail(t *testing.T) {
	id := primitive.NewObjectID()
	restaurants := &stubRestaurantService{
		byID: map[string]*models.Restaurant{
			id.Hex(): {ID: id, Name: "Yod Abyssinia", Location: "Bole", ThemeColor: "#D97706"},
		},
	}
	menus := &stubMenuService{
		items: []models.MenuItem{
			{ID: "item-0-0", Name: "Doro Wot", Price: 250, Category: "Mains"},
		},
		categories: []string{"Mains"},
	}
	h := newPageHandler(t, restaurants, menus)

	t.Run("Should render the menu page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.RestaurantDetail(rec, httptest.NewRequest(http.MethodGet, "/restaurant/"+id.Hex(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Yod Abyssinia")
		assert.Contains(t, body, "Doro Wot")
		assert.Contains(t, body, "250 Birr")
		assert.Contains(t, body, "Mains")
	})

	t.Run("Should respond 404 for an unknown or locked restaurant", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.RestaurantDetail(rec, httptest.NewRequest(http.MethodGet, "/restaurant/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Restaurant Not Found")
	})

	t.Run("Should respond 404 for a missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.RestaurantDetail(rec, httptest.NewRequest(http.MethodGet, "/restaurant/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Should render the empty state without menu items", func(t *testing.T) {
		h := newPageHandler(t, restaurants, &stubMenuService{})

		rec := httptest.NewRecorder()
		h.RestaurantDetail(rec, httptest.NewRequest(http.MethodGet, "/restaurant/"+id.Hex(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No menu items available")
	})
}
