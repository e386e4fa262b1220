package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/mani-django09/new-calc-sub000/internal/cache"
	"github.com/mani-django09/new-calc-sub000/internal/config"
	"github.com/mani-django09/new-calc-sub000/internal/metadata"
)

// NewRouter mounts the calculator API. The returned limiter is non-nil only
// when rate limiting is enabled; the caller owns stopping it.
func NewRouter(cfg config.Config, c cache.Cache, reg *metadata.Registry, log zerolog.Logger) (chi.Router, *RateLimiter) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(requestLogger(log))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	var limiter *RateLimiter
	if cfg.RateLimitEnabled {
		limiter = NewRateLimiter(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindow)*time.Second)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondData(w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/calculators", ListCalculatorsHandler(reg))
		ar.Get("/metadata/{calculator}", MetadataHandler(reg))

		ar.Group(func(cr chi.Router) {
			if limiter != nil {
				cr.Use(RateLimit(limiter))
			}
			cr.Use(ResultCache(c, log))

			cr.Post("/cgpa-calculator", CGPAHandler())
			cr.Post("/cgpa-to-percentage", CGPAToPercentageHandler())
			cr.Post("/percentage-to-cgpa", PercentageToCGPAHandler())
			cr.Post("/marks-percentage", MarksPercentageHandler())
			cr.Post("/name-numerology", NameNumerologyHandler())
			cr.Post("/share-average", ShareAverageHandler())
			cr.Post("/snow-day", SnowDayHandler())
			cr.Post("/mortgage-payoff", MortgagePayoffHandler(cfg.AmortizationCapFactor))
			cr.Post("/mortgage-overpayment", MortgageOverpaymentHandler(cfg.AmortizationCapFactor))
			cr.Post("/crs-calculator", CRSDetailedHandler())
			cr.Post("/crs-score-calculator", CRSSimpleHandler())
		})
	})

	return r, limiter
}

func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
