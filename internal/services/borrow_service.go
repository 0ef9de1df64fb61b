package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/biblioteka/internal/models"
	"github.com/rs/zerolog/log"
)

// BorrowServiceProvider defines the interface for borrow services.
type BorrowServiceProvider interface {
	BorrowBook(bookID int64, username string) (models.Borrow, error)
}

// BorrowService provides business logic for lending books.
type BorrowService struct {
	db *sql.DB
}

// NewBorrowService creates a new BorrowService.
func NewBorrowService(db *sql.DB) *BorrowService {
	return &BorrowService{db: db}
}

// BorrowBook records a loan of the given book to the given username, creating
// the user if it has never been seen before. The whole operation runs in one
// transaction: a failure at any step leaves no orphan user and no half-flipped
// availability flag. The availability update is conditional, so two
// concurrent borrows of the same book cannot both succeed.
func (s *BorrowService) BorrowBook(bookID int64, username string) (models.Borrow, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Borrow{}, err
	}
	defer tx.Rollback()

	var book models.Book
	row := tx.QueryRow("SELECT id, title, author, is_available FROM books WHERE id = ?", bookID)
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.IsAvailable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Borrow{}, fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
		}
		return models.Borrow{}, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return models.Borrow{}, ErrMissingUsername
	}

	// Flip the availability flag only if the book is still available. Zero
	// affected rows means somebody borrowed it first.
	res, err := tx.Exec("UPDATE books SET is_available = 0 WHERE id = ? AND is_available = 1", bookID)
	if err != nil {
		return models.Borrow{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Borrow{}, err
	}
	if affected == 0 {
		return models.Borrow{}, fmt.Errorf("book %q: %w", book.Title, ErrBookUnavailable)
	}

	var userID int64
	err = tx.QueryRow("SELECT id FROM users WHERE username = ?", username).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := tx.Exec("INSERT INTO users (username) VALUES (?)", username)
		if err != nil {
			return models.Borrow{}, err
		}
		if userID, err = res.LastInsertId(); err != nil {
			return models.Borrow{}, err
		}
	} else if err != nil {
		return models.Borrow{}, err
	}

	borrow := models.Borrow{
		Reference:  uuid.New().String(),
		UserID:     userID,
		BookID:     book.ID,
		BorrowDate: time.Now().Format("2006-01-02"),
		BookTitle:  book.Title,
		Username:   username,
	}

	res, err = tx.Exec(
		"INSERT INTO borrows (reference, user_id, book_id, borrow_date) VALUES (?, ?, ?, ?)",
		borrow.Reference, borrow.UserID, borrow.BookID, borrow.BorrowDate,
	)
	if err != nil {
		return models.Borrow{}, err
	}
	if borrow.ID, err = res.LastInsertId(); err != nil {
		return models.Borrow{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Borrow{}, err
	}

	log.Info().
		Str("reference", borrow.Reference).
		Int64("book_id", book.ID).
		Str("username", username).
		Msg("Book borrowed")

	return borrow, nil
}
