package formatter

import (
	"strings"
	"testing"

	"libbot/internal/models"
)

func TestBook(t *testing.T) {
	t.Run("with all fields", func(t *testing.T) {
		e := Book(models.Book{
			Title:       "The Dispossessed",
			Authors:     []string{"Ursula K. Le Guin"},
			Rating:      4.5,
			Description: "An ambiguous utopia",
			Image:       "https://example.com/cover.jpg",
			PreviewURL:  "https://example.com/preview",
		})

		if e.Title != "The Dispossessed" {
			t.Errorf("unexpected title %q", e.Title)
		}
		if e.URL != "https://example.com/preview" {
			t.Errorf("unexpected URL %q", e.URL)
		}
		if len(e.Fields) != 2 {
			t.Fatalf("expected 2 fields, got %d", len(e.Fields))
		}
		if e.Fields[0].Name != "Author" || e.Fields[0].Value != "Ursula K. Le Guin" {
			t.Errorf("unexpected author field %+v", e.Fields[0])
		}
		if e.Fields[1].Name != "Rating" || e.Fields[1].Value != "4.5" {
			t.Errorf("unexpected rating field %+v", e.Fields[1])
		}
	})

	t.Run("sentinel preview is not a link", func(t *testing.T) {
		e := Book(models.Book{Title: "X", PreviewURL: "Not Found"})
		if e.URL != "" {
			t.Errorf("expected no URL, got %q", e.URL)
		}
	})

	t.Run("missing rating reads as Not Found", func(t *testing.T) {
		e := Book(models.Book{Title: "X"})
		if e.Fields[1].Value != "Not Found" {
			t.Errorf("expected rating sentinel, got %q", e.Fields[1].Value)
		}
	})

	t.Run("whole number rating drops the decimal", func(t *testing.T) {
		e := Book(models.Book{Title: "X", Rating: 4})
		if e.Fields[1].Value != "4" {
			t.Errorf("expected 4, got %q", e.Fields[1].Value)
		}
	})
}

func TestStoredBook(t *testing.T) {
	e := StoredBook(models.Book{
		Title:   "The Dispossessed",
		Authors: []string{"Ursula K. Le Guin"},
	})

	if len(e.Fields) != 1 {
		t.Fatalf("expected only the author field, got %d fields", len(e.Fields))
	}
	if e.Fields[0].Name != "Author" {
		t.Errorf("unexpected field %+v", e.Fields[0])
	}
}

func TestHelp(t *testing.T) {
	e := Help()

	if e.Title != "Help" {
		t.Errorf("unexpected title %q", e.Title)
	}
	if len(e.Fields) != 4 {
		t.Fatalf("expected 4 usage fields, got %d", len(e.Fields))
	}
	for _, f := range e.Fields {
		if !strings.Contains(f.Value, "$lib") {
			t.Errorf("field %q does not show a command", f.Name)
		}
	}
}

func TestPlainText(t *testing.T) {
	out := PlainText(Embed{
		Title:       "The Dispossessed",
		URL:         "https://example.com/preview",
		Description: "An ambiguous utopia",
		Fields:      []Field{{Name: "Author", Value: "Ursula K. Le Guin"}},
	})

	if !strings.HasPrefix(out, "The Dispossessed <https://example.com/preview>\n") {
		t.Errorf("unexpected first line: %q", out)
	}
	if !strings.Contains(out, "  An ambiguous utopia\n") {
		t.Errorf("description missing: %q", out)
	}
	if !strings.Contains(out, "  Author: Ursula K. Le Guin\n") {
		t.Errorf("author field missing: %q", out)
	}
}
