package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/cantina-pos-backend/api/controllers"
	"github.com/angelmondragon/cantina-pos-backend/api/middleware"
	"github.com/angelmondragon/cantina-pos-backend/pkg/config"
	"github.com/angelmondragon/cantina-pos-backend/pkg/logger"
)

// NewRouter wires every HTTP surface: health, metrics, the catalog read
// paths, and the per-session order building flow.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	catalogService controllers.CatalogService,
	sessionService controllers.SessionService,
	ledgerService controllers.LedgerService,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories/{category}/products", controllers.CatalogCategoryProducts(catalogService, logg))
			r.Get("/liquors/{name}", controllers.CatalogLiquorProducts(catalogService, logg))
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", controllers.SessionCreate(sessionService, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", controllers.SessionDelete(sessionService, logg))

				r.Route("/selection", func(r chi.Router) {
					r.Post("/", controllers.SelectionStart(sessionService, logg))
					r.Post("/increment", controllers.SelectionIncrement(sessionService, logg))
					r.Post("/decrement", controllers.SelectionDecrement(sessionService, logg))
					r.Post("/choose", controllers.SelectionChoose(sessionService, logg))
					r.Post("/cooking-term", controllers.SelectionCookingTerm(sessionService, logg))
					r.Post("/confirm", controllers.SelectionConfirm(sessionService, logg))
					r.Delete("/", controllers.SelectionCancel(sessionService, logg))
				})

				r.Route("/cart", func(r chi.Router) {
					r.Get("/", controllers.CartGet(sessionService, logg))
					r.Delete("/", controllers.CartClear(sessionService, logg))
					r.Delete("/items/{itemId}", controllers.CartItemDelete(sessionService, logg))
				})

				r.Post("/complete", controllers.SessionComplete(sessionService, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(ledgerService, logg))
			r.Delete("/{id}", controllers.OrderDelete(ledgerService, logg))
			r.Route("/history", func(r chi.Router) {
				r.Get("/", controllers.OrdersHistoryList(ledgerService, logg))
				r.Delete("/", controllers.OrdersHistoryClear(ledgerService, logg))
				r.Delete("/{id}", controllers.OrdersHistoryDelete(ledgerService, logg))
			})
		})
	})

	return r
}
