package models

import "testing"

func TestBookPrimaryAuthor(t *testing.T) {
	t.Run("first author wins", func(t *testing.T) {
		b := Book{Authors: []string{"Ursula K. Le Guin", "Someone Else"}}
		if b.PrimaryAuthor() != "Ursula K. Le Guin" {
			t.Errorf("unexpected author %q", b.PrimaryAuthor())
		}
	})

	t.Run("no authors reads as Not Found", func(t *testing.T) {
		b := Book{}
		if b.PrimaryAuthor() != "Not Found" {
			t.Errorf("unexpected author %q", b.PrimaryAuthor())
		}
	})
}

func TestListValidate(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		list := NewList(1, "user1", "scifi")
		if err := list.Validate(); err != nil {
			t.Errorf("expected valid list, got %v", err)
		}
	})

	t.Run("missing owner", func(t *testing.T) {
		list := NewList(1, "", "scifi")
		if err := list.Validate(); err == nil {
			t.Error("expected an error without an owner")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		list := NewList(1, "user1", "")
		if err := list.Validate(); err == nil {
			t.Error("expected an error without a name")
		}
	})
}

func TestListEntryValidate(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry := NewListEntry(1, "list-id", Book{Title: "The Dispossessed"})
		if err := entry.Validate(); err != nil {
			t.Errorf("expected valid entry, got %v", err)
		}
	})

	t.Run("missing list", func(t *testing.T) {
		entry := NewListEntry(1, "", Book{Title: "The Dispossessed"})
		if err := entry.Validate(); err == nil {
			t.Error("expected an error without a list ID")
		}
	})

	t.Run("missing title", func(t *testing.T) {
		entry := NewListEntry(1, "list-id", Book{})
		if err := entry.Validate(); err == nil {
			t.Error("expected an error without a title")
		}
	})
}
