package router

import (
	"net/http"

	"loja-api/internal/handler"
	"loja-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	usuarioHandler *handler.UsuarioHandler,
	produtoHandler *handler.ProdutoHandler,
	pedidoHandler *handler.PedidoHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/usuarios", func(r chi.Router) {
			r.Get("/", usuarioHandler.List)
			r.Post("/", usuarioHandler.Create)
			r.Get("/{id}", usuarioHandler.Get)
			r.Put("/{id}", usuarioHandler.Update)
			r.Delete("/{id}", usuarioHandler.Delete)
		})

		r.Route("/produtos", func(r chi.Router) {
			r.Get("/", produtoHandler.List)
			r.Post("/", produtoHandler.Create)
			r.Get("/{id}", produtoHandler.Get)
			r.Put("/{id}", produtoHandler.Update)
			r.Delete("/{id}", produtoHandler.Delete)
		})

		r.Route("/pedidos", func(r chi.Router) {
			r.Get("/", pedidoHandler.List)
			r.Post("/", pedidoHandler.Create)
			r.Get("/{id}", pedidoHandler.Get)
			r.Put("/{id}", pedidoHandler.Update)
			r.Delete("/{id}", pedidoHandler.Delete)
		})
	})

	return r
}
