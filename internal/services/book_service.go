package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/isdelr/biblioteka/internal/models"
	"github.com/rs/zerolog/log"
)

// BookServiceProvider defines the interface for catalogue services.
type BookServiceProvider interface {
	ListAvailable() ([]models.Book, error)
	GetBook(id int64) (models.Book, error)
	CreateBook(title, author string) (models.Book, error)
}

// BookService provides business logic for the book catalogue.
type BookService struct {
	db *sql.DB
}

// NewBookService creates a new BookService.
func NewBookService(db *sql.DB) *BookService {
	return &BookService{db: db}
}

// ListAvailable returns every book whose availability flag is set, ordered by
// id ascending so the listing is stable across requests.
func (s *BookService) ListAvailable() ([]models.Book, error) {
	rows, err := s.db.Query("SELECT id, title, author, is_available FROM books WHERE is_available = 1 ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.IsAvailable); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// GetBook retrieves a single book by its ID.
func (s *BookService) GetBook(id int64) (models.Book, error) {
	var book models.Book
	row := s.db.QueryRow("SELECT id, title, author, is_available FROM books WHERE id = ?", id)
	err := row.Scan(&book.ID, &book.Title, &book.Author, &book.IsAvailable)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, fmt.Errorf("book %d: %w", id, ErrBookNotFound)
		}
		return models.Book{}, err
	}
	return book, nil
}

// CreateBook registers a new book in the catalogue. Title and author must be
// non-empty after trimming; new books are always available.
func (s *BookService) CreateBook(title, author string) (models.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" {
		return models.Book{}, ErrMissingFields
	}

	res, err := s.db.Exec("INSERT INTO books (title, author, is_available) VALUES (?, ?, 1)", title, author)
	if err != nil {
		return models.Book{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Book{}, err
	}

	log.Info().Int64("book_id", id).Str("title", title).Msg("Book added to catalogue")

	return models.Book{ID: id, Title: title, Author: author, IsAvailable: true}, nil
}
