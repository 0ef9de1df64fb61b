package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/biblioteka/internal/services"
	"github.com/isdelr/biblioteka/internal/web"
	"github.com/rs/zerolog/log"
)

// BorrowHandler handles HTTP requests for borrowing books.
type BorrowHandler struct {
	books    services.BookServiceProvider
	borrows  services.BorrowServiceProvider
	renderer *web.Renderer
}

// NewBorrowHandler creates a new BorrowHandler.
func NewBorrowHandler(books services.BookServiceProvider, borrows services.BorrowServiceProvider, renderer *web.Renderer) *BorrowHandler {
	return &BorrowHandler{books: books, borrows: borrows, renderer: renderer}
}

func bookIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
}

// Form renders the borrow form for one book. Unknown books are a 404.
func (h *BorrowHandler) Form(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	book, err := h.books.GetBook(id)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Int64("book_id", id).Msg("Failed to load book")
		http.Error(w, "Failed to load book", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, "borrow.html", web.BorrowFormView{Book: book})
}

// Create records a borrow from the submitted form. Unknown books are a 404;
// a missing username or an already borrowed book re-renders the form with a
// message and persists nothing.
func (h *BorrowHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")

	borrow, err := h.borrows.BorrowBook(id, username)
	switch {
	case err == nil:
		web.SetFlash(w, web.FlashSuccess,
			fmt.Sprintf("Book %q has been borrowed by %s.", borrow.BookTitle, borrow.Username))
		http.Redirect(w, r, "/", http.StatusFound)
	case errors.Is(err, services.ErrBookNotFound):
		http.NotFound(w, r)
	case errors.Is(err, services.ErrMissingUsername):
		h.rerenderForm(w, r, id, username, "Username is required!")
	case errors.Is(err, services.ErrBookUnavailable):
		h.rerenderForm(w, r, id, username, "This book has already been borrowed.")
	default:
		log.Error().Err(err).Int64("book_id", id).Msg("Failed to borrow book")
		http.Error(w, "Failed to borrow book", http.StatusInternalServerError)
	}
}

func (h *BorrowHandler) rerenderForm(w http.ResponseWriter, r *http.Request, id int64, username, message string) {
	book, err := h.books.GetBook(id)
	if err != nil {
		log.Error().Err(err).Int64("book_id", id).Msg("Failed to load book")
		http.Error(w, "Failed to load book", http.StatusInternalServerError)
		return
	}
	h.renderer.Render(w, "borrow.html", web.BorrowFormView{
		Book:     book,
		Username: username,
		Error:    message,
	})
}
