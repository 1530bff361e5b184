package router

import (
	"database/sql"
	"net/http"

	_ "pet-health-journal/docs"
	mem "pet-health-journal/internal/adapters/storage/memory"
	pg "pet-health-journal/internal/adapters/storage/postgres"
	"pet-health-journal/internal/domain/alerts"
	"pet-health-journal/internal/domain/checkins"
	"pet-health-journal/internal/domain/insights"
	"pet-health-journal/internal/domain/pets"
	"pet-health-journal/internal/middleware"
	"pet-health-journal/internal/platform/config"
	"pet-health-journal/internal/platform/logger"
	"pet-health-journal/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Opcional: nil => sin cache.
	Cache insights.Cache

	Insights config.InsightsConfig
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	cache := opts.Cache
	if cache == nil {
		cache = insights.NopCache{}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo     pets.Repository
		checkInRepo checkins.Repository
		alertRepo   alerts.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		checkInRepo = pg.NewCheckInsRepo(opts.DB)
		alertRepo = pg.NewAlertsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		checkInRepo = mem.NewCheckInRepo()
		alertRepo = mem.NewAlertRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	alertsSvc := alerts.NewService(alertRepo, log)
	checkinsSvc := checkins.NewService(checkInRepo, checkins.Options{
		Logger:           log,
		Invalidator:      cache,
		FreeTextMaxChars: opts.Insights.FreeTextMaxChars,
	})
	insightsSvc := insights.NewService(checkinsSvc, insights.Options{
		Logger:           log,
		Cache:            cache,
		Alerts:           alertsSvc,
		WindowDays:       opts.Insights.WindowDays,
		DensityThreshold: opts.Insights.DensityThreshold,
		TextMaxChars:     opts.Insights.FreeTextMaxChars,
	})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	checkins.RegisterRoutes(r, checkinsSvc, petsSvc)
	insights.RegisterRoutes(r, insightsSvc, petsSvc)
	alerts.RegisterRoutes(r, alertsSvc, petsSvc)

	return r
}
