package router

import (
	"net/http"

	"pet-care-registry/internal/domain/adoptions"
	"pet-care-registry/internal/domain/appointments"
	"pet-care-registry/internal/domain/healthrecords"
	"pet-care-registry/internal/domain/messages"
	"pet-care-registry/internal/domain/notifications"
	"pet-care-registry/internal/domain/payments"
	"pet-care-registry/internal/domain/pets"
	"pet-care-registry/internal/domain/prescriptions"
	"pet-care-registry/internal/domain/users"
	"pet-care-registry/internal/middleware"
	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/metrics"

	_ "pet-care-registry/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// nil => logger.Nop()
	Logger logger.Logger

	// nil => colecciones en memoria (modo dev / tests)
	Stores *Stores

	// nil => sin /metrics
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	stores := MemoryStores()
	if opts.Stores != nil {
		stores = *opts.Stores
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo. users, pets y appointments son las entidades referenciables.
	usersSvc := users.NewService(stores.Users, stores.UserEmails, stores.UserUsernames)
	petsSvc := pets.NewService(stores.Pets)
	apptSvc := appointments.NewService(stores.Appointments, petsSvc, usersSvc)
	recordsSvc := healthrecords.NewService(stores.HealthRecords, petsSvc, usersSvc)
	rxSvc := prescriptions.NewService(stores.Prescriptions, petsSvc, usersSvc)
	msgSvc := messages.NewService(stores.Messages, usersSvc)
	notifSvc := notifications.NewService(stores.Notifications, usersSvc)
	paySvc := payments.NewService(stores.Payments, usersSvc, apptSvc)
	adoptSvc := adoptions.NewService(stores.Adoptions, petsSvc, usersSvc)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, log)
	pets.RegisterRoutes(r, petsSvc, log)
	appointments.RegisterRoutes(r, apptSvc, log)
	healthrecords.RegisterRoutes(r, recordsSvc, log)
	prescriptions.RegisterRoutes(r, rxSvc, log)
	messages.RegisterRoutes(r, msgSvc, log)
	notifications.RegisterRoutes(r, notifSvc, log)
	payments.RegisterRoutes(r, paySvc, log)
	adoptions.RegisterRoutes(r, adoptSvc, log)

	return r
}
