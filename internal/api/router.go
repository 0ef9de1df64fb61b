package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/biblioteka/internal/api/handlers"
	"github.com/isdelr/biblioteka/internal/services"
	"github.com/isdelr/biblioteka/internal/web"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(bookService services.BookServiceProvider, borrowService services.BorrowServiceProvider, renderer *web.Renderer) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize handlers
	bookHandler := handlers.NewBookHandler(bookService, renderer)
	borrowHandler := handlers.NewBorrowHandler(bookService, borrowService, renderer)

	// Server-rendered pages
	r.Get("/", bookHandler.List)
	r.Get("/add_book", bookHandler.NewForm)
	r.Post("/add_book", bookHandler.Create)
	r.Route("/borrow/{bookID}", func(r chi.Router) {
		r.Get("/", borrowHandler.Form)
		r.Post("/", borrowHandler.Create)
	})

	// JSON API for external consumers
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/books", bookHandler.ListJSON)
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		})
	})

	return r
}
