package router

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pets-provider/docs"
	mem "pets-provider/internal/adapters/storage/memory"
	pg "pets-provider/internal/adapters/storage/postgres"
	"pets-provider/internal/domain/changes"
	"pets-provider/internal/domain/pets"
	"pets-provider/internal/middleware"
	"pets-provider/internal/platform/buildinfo"
	"pets-provider/internal/platform/logger"
	"pets-provider/internal/provider"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // puede ser nil (tests)

	// Opcional: para registrar observers de cambios desde fuera del router.
	Notifier *provider.Notifier
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(middlewares(log)...)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/version", versionHandler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		petRepo    pets.Repository
		changeRepo changes.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		changeRepo = pg.NewChangesRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		changeRepo = mem.NewChangeRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	changesSvc := changes.NewService(changeRepo)

	prov := provider.New(provider.Options{
		Pets:     petsSvc,
		Changes:  changesSvc,
		Notifier: opts.Notifier,
		Logger:   log.With(map[string]any{"component": "provider"}),
	})

	// Rutas por módulo
	provider.RegisterRoutes(r, prov)
	changes.RegisterRoutes(r, changesSvc)

	return r
}

// middlewares en orden de ejecución. AccessLog envuelve a Recover para que
// los panics también dejen su línea con status 500.
func middlewares(log logger.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		chimw.RealIP,
		middleware.AccessLog(log),
		middleware.Recover(log),
	}
}

type versionResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// versionHandler godoc
// @Summary Versión del servicio
// @Tags health
// @Produce json
// @Success 200 {object} versionResponse
// @Router /version [get]
func versionHandler() http.HandlerFunc {
	info := buildinfo.Info()
	out := versionResponse{
		Name:      info.Name,
		Version:   info.GitVersion,
		Commit:    info.GitCommit,
		BuildDate: info.BuildDate,
		GoVersion: info.GoVersion,
		Platform:  info.Platform,
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
