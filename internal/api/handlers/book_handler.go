package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/isdelr/biblioteka/internal/models"
	"github.com/isdelr/biblioteka/internal/services"
	"github.com/isdelr/biblioteka/internal/web"
	"github.com/rs/zerolog/log"
)

// BookHandler handles HTTP requests for the book catalogue.
type BookHandler struct {
	books    services.BookServiceProvider
	renderer *web.Renderer
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(books services.BookServiceProvider, renderer *web.Renderer) *BookHandler {
	return &BookHandler{books: books, renderer: renderer}
}

// List renders the catalogue of available books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	flash := web.PopFlash(w, r)

	books, err := h.books.ListAvailable()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list available books")
		http.Error(w, "Failed to load the catalogue", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, "books.html", web.BookListView{Books: books, Flash: flash})
}

// NewForm renders the empty add-book form.
func (h *BookHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "add_book.html", web.BookFormView{})
}

// Create registers a new book from the submitted form. Missing fields
// re-render the form with a validation message and persist nothing.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	title := r.PostFormValue("title")
	author := r.PostFormValue("author")

	book, err := h.books.CreateBook(title, author)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			h.renderer.Render(w, "add_book.html", web.BookFormView{
				Title:  title,
				Author: author,
				Error:  "Title and author are required!",
			})
			return
		}
		log.Error().Err(err).Str("title", title).Msg("Failed to create book")
		http.Error(w, "Failed to create book", http.StatusInternalServerError)
		return
	}

	web.SetFlash(w, web.FlashSuccess, fmt.Sprintf("Book %q has been added!", book.Title))
	http.Redirect(w, r, "/", http.StatusFound)
}

// ListJSON returns the available books as JSON for API consumers.
func (h *BookHandler) ListJSON(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.ListAvailable()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list available books")
		http.Error(w, `{"error":"failed to load the catalogue"}`, http.StatusInternalServerError)
		return
	}
	if books == nil {
		books = []models.Book{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(books)
}
