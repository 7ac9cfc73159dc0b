package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salepointhq/salepoint-backend/api/controllers"
	"github.com/salepointhq/salepoint-backend/api/middleware"
	"github.com/salepointhq/salepoint-backend/internal/catalog"
	"github.com/salepointhq/salepoint-backend/internal/notifications"
	"github.com/salepointhq/salepoint-backend/internal/pos"
	"github.com/salepointhq/salepoint-backend/internal/sales"
	"github.com/salepointhq/salepoint-backend/pkg/config"
	"github.com/salepointhq/salepoint-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registerService pos.Service,
	catalogStore catalog.Lookup,
	salesLedger *sales.Ledger,
	notificationsService notifications.Service,
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
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/register/sessions", func(r chi.Router) {
			r.Post("/", controllers.OpenRegisterSession(registerService, logg))
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Route("/cart", func(r chi.Router) {
					r.Get("/", controllers.FetchCart(registerService, logg))
					r.Delete("/", controllers.ClearCart(registerService, logg))
					r.Post("/items", controllers.AddCartItem(registerService, logg))
					r.Post("/custom-items", controllers.AddCustomCartItem(registerService, logg))
					r.Put("/items/{itemId}", controllers.SetCartItemQuantity(registerService, logg))
					r.Delete("/items/{itemId}", controllers.RemoveCartItem(registerService, logg))
				})
				r.Post("/checkout", controllers.Checkout(registerService, logg))
			})
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/items", controllers.ListCatalogItems(catalogStore, logg))
			r.Get("/items/barcode/{barcode}", controllers.FetchCatalogItemByBarcode(catalogStore, logg))
			r.Get("/items/{itemId}", controllers.FetchCatalogItem(catalogStore, logg))
			r.Get("/categories", controllers.ListCatalogCategories(catalogStore, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.ListSales(salesLedger, logg))
			r.Get("/summary", controllers.SalesSummary(salesLedger, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(notificationsService, logg))
			r.Post("/{notificationId}/read", controllers.MarkNotificationRead(notificationsService, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(notificationsService, logg))
		})
	})

	return r
}
