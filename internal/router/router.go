package router

import (
	"net/http"

	"github.com/brookxc/etmenu/internal/handler"
	"github.com/brookxc/etmenu/internal/view"
)

// NewRouter wires all routes into a ServeMux
func NewRouter(
	pageHandler *handler.PageHandler,
	contactHandler *handler.ContactHandler,
	debugHandler *handler.DebugHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages. The root pattern also catches unmatched paths; the directory
	// handler renders the not-found page for those.
	mux.HandleFunc("/", pageHandler.Directory)
	mux.HandleFunc("/restaurant/", pageHandler.RestaurantDetail)

	// Contact form
	mux.HandleFunc("/contact", contactHandler.Submit)

	// Debug
	mux.HandleFunc("/api/debug", debugHandler.DatabaseOverview)

	// Embedded assets
	mux.Handle("/static/", view.StaticHandler())

	return mux
}
