package models

// User represents a borrower. Users are created lazily the first time an
// unknown username borrows a book and are never updated or deleted.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
