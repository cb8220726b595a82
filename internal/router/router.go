package router

import (
	"database/sql"
	"net/http"

	_ "shelter-registry/docs"
	mem "shelter-registry/internal/adapters/storage/memory"
	pg "shelter-registry/internal/adapters/storage/postgres"
	"shelter-registry/internal/domain/shelters"
	"shelter-registry/internal/middleware"
	"shelter-registry/internal/platform/logger"
	"shelter-registry/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var shelterRepo shelters.Repository
	if opts.DB != nil {
		shelterRepo = pg.NewSheltersRepo(opts.DB)
	} else {
		shelterRepo = mem.NewShelterRepo()
	}

	sheltersSvc := shelters.NewService(shelterRepo, log.With(map[string]any{"module": "shelters"}))
	shelters.RegisterRoutes(r, sheltersSvc)

	return r
}
