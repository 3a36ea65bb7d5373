package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"pawlog/internal/app"
	_ "pawlog/internal/docs"
	"pawlog/internal/domain/community"
	"pawlog/internal/domain/pawlog"
	"pawlog/internal/middleware"
	"pawlog/internal/platform/config"
	"pawlog/internal/platform/logger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: si no viene, se arma una App in-memory (tests / dev).
	// Store y Feed salen siempre de la misma App para que lo publicado llegue al feed.
	App *app.App
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	a := opts.App
	if a == nil {
		a = inMemoryApp(log)
	}

	// Rutas por módulo
	pawlog.RegisterRoutes(r, a.Store)
	community.RegisterRoutes(r, a.Feed)

	return r
}

func inMemoryApp(log logger.Logger) *app.App {
	a, err := app.New(context.Background(), config.Default(), log)
	if err != nil {
		panic(err)
	}
	return a
}
