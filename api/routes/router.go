package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/merchly/quoter-backend/api/controllers"
	quotecontrollers "github.com/merchly/quoter-backend/api/controllers/quotes"
	"github.com/merchly/quoter-backend/api/middleware"
	"github.com/merchly/quoter-backend/pkg/config"
	"github.com/merchly/quoter-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	engine quotecontrollers.Engine,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/quotes", func(r chi.Router) {
		r.Post("/", quotecontrollers.QuoteUpsert(engine, logg))
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", quotecontrollers.QuoteFetch(engine, logg))
			r.Post("/payment-validation", quotecontrollers.QuoteValidatePayment(engine, logg))
			r.Route("/coupons", func(r chi.Router) {
				r.Post("/", quotecontrollers.CouponApply(engine, logg))
				r.Delete("/{code}", quotecontrollers.CouponRemove(engine, logg))
				r.Get("/available", quotecontrollers.CouponsAvailable(engine, logg))
			})
		})
	})

	return r
}
