package router

import (
	"database/sql"
	"net/http"
	"time"

	"venture-hub/internal/access"
	mem "venture-hub/internal/adapters/storage/memory"
	pg "venture-hub/internal/adapters/storage/postgres"
	"venture-hub/internal/domain/accessrequests"
	"venture-hub/internal/domain/audit"
	"venture-hub/internal/domain/privatedata"
	"venture-hub/internal/domain/profiles"
	"venture-hub/internal/domain/startups"
	"venture-hub/internal/identity"
	"venture-hub/internal/middleware"
	"venture-hub/internal/platform/logger"
	"venture-hub/internal/ports/auth"
	"venture-hub/internal/ports/notify"

	_ "venture-hub/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// RateLimiter nil = sin límite en el submit de solicitudes.
	RateLimiter middleware.Counter
	RateLimit   middleware.RateLimitOptions

	// Publisher nil = notify.Noop.
	Publisher notify.Publisher
	Logger    logger.Logger

	// Clock nil = time.Now. Solo para tests de vencimiento.
	Clock func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	var (
		profileRepo profiles.Repository
		startupRepo startups.Repository
		requestRepo accessrequests.Repository
		sectionRepo privatedata.Repository
		auditRepo   audit.Repository
	)

	if opts.DB != nil {
		profileRepo = pg.NewProfilesRepo(opts.DB)
		startupRepo = pg.NewStartupsRepo(opts.DB)
		requestRepo = pg.NewAccessRequestsRepo(opts.DB)
		sectionRepo = pg.NewPrivateDataRepo(opts.DB)
		auditRepo = pg.NewAuditRepo(opts.DB)
	} else {
		profileRepo = mem.NewProfilesRepo()
		startupRepo = mem.NewStartupsRepo()
		requestRepo = mem.NewAccessRequestsRepo()
		sectionRepo = mem.NewPrivateDataRepo()
		auditRepo = mem.NewAuditRepo()
	}

	// Services por módulo
	profilesSvc := profiles.NewService(profileRepo)
	startupsSvc := startups.NewService(startupRepo)
	requestsSvc := accessrequests.NewService(requestRepo, startupsSvc).
		WithPublisher(opts.Publisher).
		WithLogger(log).
		WithClock(opts.Clock)
	engine := access.NewEngine(startupsSvc, requestsSvc).
		WithLogger(log).
		WithClock(opts.Clock)
	auditLog := audit.NewLog(auditRepo, startupsSvc).WithClock(opts.Clock)
	store := privatedata.NewStore(sectionRepo)

	// Identidad: claims verificados -> perfil + startup propia
	r.Use(middleware.AuthContext(opts.AuthVerifier, log))
	r.Use(middleware.Identity(identity.NewResolver(profilesSvc, startupsSvc)))

	rl := opts.RateLimit
	if rl.Log == nil {
		rl.Log = log
	}
	if rl.Prefix == "" {
		rl.Prefix = "ratelimit:access-requests"
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	profiles.RegisterRoutes(r, profilesSvc)
	startups.RegisterRoutes(r, startupsSvc, engine)
	accessrequests.RegisterRoutes(r, requestsSvc, middleware.RateLimit(opts.RateLimiter, rl))
	privatedata.RegisterRoutes(r, privatedata.Deps{
		Store:    store,
		Engine:   engine,
		Startups: startupsSvc,
		Audit:    auditLog,
		Log:      log,
	})
	audit.RegisterRoutes(r, auditLog)

	return r
}
