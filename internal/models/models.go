// package models defines the data model for the book bot
package models

import (
	"time"
)

// DefaultListName is the list used when a command names no list.
// The name is reserved; users address it by omitting the listname token.
const DefaultListName = "reading list"

// Model defines the base interface for all persistent models.
// Implementations include List and ListEntry.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Book represents one normalized book record from any catalog source.
//
// Missing upstream fields carry sentinel values rather than being empty:
// "Not Found" for text fields, "0" for ISBNs, "" for the thumbnail image.
type Book struct {
	Title       string
	Authors     []string
	Rating      float64 // 0 when the catalog reports no rating
	Description string
	Image       string // thumbnail URL
	PreviewURL  string
	ISBN10      string
	ISBN13      string
}

// PrimaryAuthor returns the first listed author, or "Not Found" when the
// catalog reported none.
func (b Book) PrimaryAuthor() string {
	if len(b.Authors) == 0 {
		return "Not Found"
	}
	return b.Authors[0]
}
