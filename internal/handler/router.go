package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/e-comm-api/internal/auth"
	"github.com/vasapolrittideah/e-comm-api/internal/middleware"
)

// NewRouter assembles the API routes. Register and login are open; every
// other route sits behind the session gate.
func NewRouter(
	logger *zerolog.Logger,
	codec auth.TokenCodec,
	requestTimeout time.Duration,
	authHandler *AuthHandler,
	productHandler *ProductHandler,
	userHandler *UserHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionGate(codec))

		r.Post("/add-product", productHandler.Create)
		r.Get("/products", productHandler.List)
		r.Get("/product/{id}", productHandler.Get)
		r.Put("/product/{id}", productHandler.Update)
		r.Delete("/product/{id}", productHandler.Delete)
		r.Get("/search/{key}", productHandler.Search)
		r.Put("/api/user/{id}", userHandler.Update)
	})

	return r
}
