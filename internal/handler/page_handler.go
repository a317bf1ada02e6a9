package handler

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/brookxc/etmenu/internal/service"
	"github.com/brookxc/etmenu/internal/view"
	"github.com/brookxc/etmenu/models"
	"github.com/brookxc/etmenu/pkg/colorutil"
	"github.com/brookxc/etmenu/pkg/logger"
)

// lighterOpacity is the opacity of the derived lighter accent color
const lighterOpacity = 0.15

// DirectoryPageData feeds the index template
type DirectoryPageData struct {
	Title       string
	Query       string
	Restaurants []*models.Restaurant
}

// RestaurantPageData feeds the restaurant detail template
type RestaurantPageData struct {
	Title           string
	Restaurant      *models.Restaurant
	MenuItems       []models.MenuItem
	Categories      []string
	ItemsByCategory map[string][]models.MenuItem

	// template.CSS so the derived rgba()/hex values survive the
	// html/template CSS sanitizer inside style attributes.
	ThemeColor        template.CSS
	LighterThemeColor template.CSS
	DarkerThemeColor  template.CSS
}

// PageHandler renders the server-side HTML pages
type PageHandler struct {
	restaurantService service.RestaurantServiceInterface
	menuService       service.MenuServiceInterface
	renderer          *view.Renderer
	colors            *colorutil.Deriver
	logger            *logger.Logger
}

func NewPageHandler(
	restaurantService service.RestaurantServiceInterface,
	menuService service.MenuServiceInterface,
	renderer *view.Renderer,
	colors *colorutil.Deriver,
	log *logger.Logger,
) *PageHandler {
	return &PageHandler{
		restaurantService: restaurantService,
		menuService:       menuService,
		renderer:          renderer,
		colors:            colors,
		logger:            log.WithComponent("page_handler"),
	}
}

// Directory handles GET /
func (h *PageHandler) Directory(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}

	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	query := r.URL.Query().Get("q")
	restaurants := h.restaurantService.ListRestaurants(r.Context(), query)

	h.renderer.Render(w, http.StatusOK, "index", DirectoryPageData{
		Title:       "ETMenu - Discover Great Restaurants in Ethiopia",
		Query:       query,
		Restaurants: restaurants,
	})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// RestaurantDetail handles GET /restaurant/{id}
func (h *PageHandler) RestaurantDetail(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	id := h.extractIDFromPath(r)
	if id == "" {
		h.renderNotFound(w)
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}

	restaurant := h.restaurantService.GetRestaurant(r.Context(), id)
	if restaurant == nil {
		h.logger.Info("Restaurant not found or locked", "restaurant_id", id)
		h.renderNotFound(w)
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}

	menuItems, categories := h.menuService.NormalizeMenu(r.Context(), restaurant)

	itemsByCategory := map[string][]models.MenuItem{}
	for _, item := range menuItems {
		itemsByCategory[item.Category] = append(itemsByCategory[item.Category], item)
	}

	themeColor := restaurant.ThemeColorOrDefault()

	h.renderer.Render(w, http.StatusOK, "restaurant", RestaurantPageData{
		Title:             restaurant.Name + " - ETMenu",
		Restaurant:        restaurant,
		MenuItems:         menuItems,
		Categories:        categories,
		ItemsByCategory:   itemsByCategory,
		ThemeColor:        template.CSS(themeColor),
		LighterThemeColor: template.CSS(h.colors.Lighten(themeColor, lighterOpacity)),
		DarkerThemeColor:  template.CSS(h.colors.Darken(themeColor)),
	})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// NotFound handles every unmatched route
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	h.renderNotFound(w)
	reqCtx.StatusCode = http.StatusNotFound
	h.logger.LogResponse(reqCtx)
}

func (h *PageHandler) renderNotFound(w http.ResponseWriter) {
	h.renderer.Render(w, http.StatusNotFound, "notfound", DirectoryPageData{
		Title: "Restaurant Not Found - ETMenu",
	})
}

// extractIDFromPath extracts the restaurant ID from /restaurant/{id}
func (h *PageHandler) extractIDFromPath(r *http.Request) string {
	path := strings.TrimPrefix(r.URL.Path, "/restaurant/")
	parts := strings.Split(path, "/")
	return strings.TrimSpace(parts[0])
}
