package router

import (
	"net/http"
	"time"

	_ "pet-care-scheduler/docs"
	mem "pet-care-scheduler/internal/adapters/storage/memory"
	sessrepo "pet-care-scheduler/internal/adapters/storage/session"
	"pet-care-scheduler/internal/domain/calendar"
	"pet-care-scheduler/internal/domain/notifications"
	"pet-care-scheduler/internal/domain/pets"
	"pet-care-scheduler/internal/domain/reservations"
	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/observability/metrics"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/platform/sessionstore"
	"pet-care-scheduler/internal/ports/storage"
	"pet-care-scheduler/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, guarda las sesiones ahí (redis/postgres). Si no, in-memory.
	Store storage.KV

	Logger logger.Logger

	// Registry de métricas. nil => uno nuevo por router (tests).
	Registry *prometheus.Registry

	// Reloj, zona y anticipación mínima de las reservas. Ceros => defaults.
	Now      func() time.Time
	Location *time.Location
	LeadTime time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.SessionContext)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(reg))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	kv := opts.Store
	if kv == nil {
		kv = mem.NewKV()
	}

	// Un lock por sesión compartido entre servicios que escriben la sesión
	locks := &sessionstore.Locks{}

	sessions := session.NewStore(kv, log)

	// Services por módulo
	petsSvc := pets.NewService(sessrepo.NewPetRepo(kv, log), sessions, locks, log.With(map[string]any{"module": "pets"}))

	reservationsSvc := reservations.NewService(reservations.Deps{
		Repo: sessrepo.NewReservationRepo(kv, log),
		Engine: reservations.NewEngine(reservations.EngineConfig{
			Now:      now,
			Location: loc,
			LeadTime: opts.LeadTime,
		}),
		Pets:    petsSvc,
		Marker:  sessions,
		Metrics: metrics.NewReservationMetrics(reg),
		Logger:  log.With(map[string]any{"module": "reservations"}),
		Locks:   locks,
	})

	// Rutas por módulo
	session.RegisterRoutes(r, sessions, petsSvc, locks, log)
	pets.RegisterRoutes(r, petsSvc, log)
	reservations.RegisterRoutes(r, reservationsSvc, log)
	calendar.NewHandlers(reservationsSvc, now, loc, log).RegisterRoutes(r)
	notifications.NewHandlers(reservationsSvc, now, loc, log).RegisterRoutes(r)

	return r
}
