package models

// Borrow links one user to one book with the calendar date the loan was made.
// Reference is a unique receipt code assigned when the loan is recorded.
type Borrow struct {
	ID         int64  `json:"id"`
	Reference  string `json:"reference"`
	UserID     int64  `json:"userId"`
	BookID     int64  `json:"bookId"`
	BorrowDate string `json:"borrowDate"` // YYYY-MM-DD

	// Denormalized for display; populated by the borrow operation.
	BookTitle string `json:"bookTitle,omitempty"`
	Username  string `json:"username,omitempty"`
}
