package models

// Book represents a single physical copy in the catalogue.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	IsAvailable bool   `json:"isAvailable"`
}
