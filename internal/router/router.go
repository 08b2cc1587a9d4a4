package router

import (
	"net/http"

	"mini-stock/internal/handler"
	"mini-stock/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Web        *handler.WebHandler
	Products   *handler.ProductHandler
	Categories *handler.CategoryHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// HTML form
	mux.HandleFunc("/", h.Web.Index)
	mux.HandleFunc("/products", h.Web.AddProduct)
	mux.HandleFunc("/categories", h.Web.AddCategory)

	// JSON API
	mux.Handle("/api/products", h.Products)
	mux.Handle("/api/categories", h.Categories)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
