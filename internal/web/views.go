package web

import "github.com/isdelr/biblioteka/internal/models"

// BookListView is the view-model for the catalogue page.
type BookListView struct {
	Books []models.Book
	Flash *Flash
}

// BookFormView is the view-model for the add-book form. Title and Author echo
// the submitted values back so a failed validation does not wipe the form.
type BookFormView struct {
	Title  string
	Author string
	Error  string
}

// BorrowFormView is the view-model for the borrow form.
type BorrowFormView struct {
	Book     models.Book
	Username string
	Error    string
}
