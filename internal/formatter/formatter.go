// package formatter renders book records and help into platform-neutral rich messages and plain text
package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"libbot/internal/models"
)

// EmbedColor is the accent color for all rich messages.
const EmbedColor = 0xFF5733

// Field is one name/value pair of an [Embed].
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a platform-neutral rich message. The Discord gateway maps it onto
// a discordgo embed; the CLI renders it as plain text.
type Embed struct {
	Title       string
	URL         string
	Description string
	Thumbnail   string
	Fields      []Field
}

// missing is the sentinel the catalog substitutes for absent text fields.
const missing = "Not Found"

// Book renders one book record as a rich message with title, preview link,
// description, thumbnail and Author/Rating fields.
func Book(b models.Book) Embed {
	e := Embed{
		Title:       b.Title,
		Description: b.Description,
		Thumbnail:   b.Image,
		Fields: []Field{
			{Name: "Author", Value: b.PrimaryAuthor(), Inline: true},
			{Name: "Rating", Value: rating(b.Rating), Inline: true},
		},
	}

	// A sentinel is not a link.
	if b.PreviewURL != "" && b.PreviewURL != missing {
		e.URL = b.PreviewURL
	}

	return e
}

// StoredBook renders a list entry: no rating field, since ratings are not
// persisted.
func StoredBook(b models.Book) Embed {
	return Embed{
		Title:       b.Title,
		Description: b.Description,
		Thumbnail:   b.Image,
		Fields: []Field{
			{Name: "Author", Value: b.PrimaryAuthor(), Inline: true},
		},
	}
}

// Help returns the static usage message.
func Help() Embed {
	return Embed{
		Title: "Help",
		Fields: []Field{
			{Name: "Search", Value: "Searches for a book with query name, you can look for a specific book or themes and genres.\nCommand - $lib search (query)"},
			{Name: "Add", Value: "Adds a book to your list, leave the listname blank to add to base reading list. Will create a list with listname if not already created. listname must have no spaces and no special characters.\nCommand - $lib (listname) add (query)"},
			{Name: "Remove", Value: "Removes a book from your list, leave the listname blank to remove from reading list.\nCommand - $lib (listname) remove (query)"},
			{Name: "Show", Value: "Shows your specified list, leave listname blank to show reading list.\nCommand - $lib show (listname)"},
		},
	}
}

// rating formats a catalog rating, substituting the text sentinel when the
// catalog reported none.
func rating(r float64) string {
	if r == 0 {
		return missing
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", r), "0"), ".")
}

// PlainText renders an embed as indented plain text for terminal output.
func PlainText(e Embed) string {
	var buf bytes.Buffer

	buf.WriteString(e.Title)
	if e.URL != "" {
		buf.WriteString(fmt.Sprintf(" <%s>", e.URL))
	}
	buf.WriteString("\n")

	if e.Description != "" {
		buf.WriteString(fmt.Sprintf("  %s\n", e.Description))
	}

	for _, f := range e.Fields {
		value := strings.ReplaceAll(f.Value, "\n", "\n    ")
		buf.WriteString(fmt.Sprintf("  %s: %s\n", f.Name, value))
	}

	return buf.String()
}
