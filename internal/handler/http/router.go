package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/health"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/middleware"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/service"
)

// RouterConfig bundles the collaborators the router needs.
type RouterConfig struct {
	Catalog        *service.CatalogService
	ProductDetail  *service.ProductDetailService
	Cart           *service.CartService
	Wishlist       *service.WishlistService
	RecentlyViewed *service.RecentlyViewedService
	Health         *health.Handler
	Logger         *slog.Logger
	PprofCIDRs     []string
	RateLimitRPS   int
	RateLimitBurst int
	CORS           middleware.CORSConfig
	CatalogMaxAge  int
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	logger := cfg.Logger

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	}

	// Health check endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, cfg.PprofCIDRs, logger)

	catalogHandler := NewCatalogHandler(cfg.Catalog, logger)
	productHandler := NewProductHandler(cfg.ProductDetail, logger)
	cartHandler := NewCartHandler(cfg.Cart, logger)
	wishlistHandler := NewWishlistHandler(cfg.Wishlist, logger)
	recentHandler := NewRecentlyViewedHandler(cfg.RecentlyViewed, logger)
	sessionHandler := NewSessionHandler(logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog reads are session-independent and cacheable.
		r.Group(func(r chi.Router) {
			if cfg.CatalogMaxAge > 0 {
				r.Use(middleware.CacheControl(cfg.CatalogMaxAge))
			}
			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/categories", catalogHandler.ListCategories)
		})

		// Everything else is scoped to the caller's session.
		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(SessionIDFromHeader)

			r.Get("/products/{productId}", productHandler.GetProduct)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)

				r.Post("/items", cartHandler.AddItem)
				r.Post("/items/{productId}/increase", cartHandler.IncreaseQuantity)
				r.Post("/items/{productId}/decrease", cartHandler.DecreaseQuantity)
				r.Delete("/items/{productId}", cartHandler.RemoveItem)
			})

			r.Post("/checkout", cartHandler.Checkout)

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", wishlistHandler.List)
				r.Post("/toggle", wishlistHandler.Toggle)
			})

			r.Get("/recently-viewed", recentHandler.List)

			r.Post("/session/navigate", sessionHandler.Navigate)
		})
	})

	return r
}
