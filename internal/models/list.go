package models

import (
	"fmt"
	"time"
)

var (
	_ Model = (*List)(nil)
	_ Model = (*ListEntry)(nil)
)

// List represents a named, per-user reading list.
// Identity is the (owner ID, name) pair; the default list is [DefaultListName].
type List struct {
	id        string
	sequence  int
	ownerID   string
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// NewList creates a List for the given owner and name.
func NewList(sequence int, ownerID, name string) *List {
	now := time.Now()
	return &List{
		sequence:  sequence,
		ownerID:   ownerID,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}
}

func (l *List) ID() string           { return l.id }
func (l *List) Sequence() int        { return l.sequence }
func (l *List) OwnerID() string      { return l.ownerID }
func (l *List) Name() string         { return l.name }
func (l *List) CreatedAt() time.Time { return l.createdAt }
func (l *List) UpdatedAt() time.Time { return l.updatedAt }

func (l *List) SetID(id string)          { l.id = id }
func (l *List) SetUpdatedAt(t time.Time) { l.updatedAt = t }
func (l *List) SetCreatedAt(t time.Time) { l.createdAt = t }
func (l *List) SetSequence(sequence int) { l.sequence = sequence }

// Validate checks that the list has an owner and a name.
func (l *List) Validate() error {
	if l.ownerID == "" {
		return fmt.Errorf("list owner ID is required")
	}
	if l.name == "" {
		return fmt.Errorf("list name is required")
	}
	return nil
}

// ListEntry represents one book stored in a list.
// Entries are unique by title within their list.
type ListEntry struct {
	id        string
	sequence  int
	listID    string
	book      Book
	createdAt time.Time
}

// NewListEntry creates a ListEntry holding the given book.
func NewListEntry(sequence int, listID string, book Book) *ListEntry {
	return &ListEntry{
		sequence:  sequence,
		listID:    listID,
		book:      book,
		createdAt: time.Now(),
	}
}

func (e *ListEntry) ID() string           { return e.id }
func (e *ListEntry) Sequence() int        { return e.sequence }
func (e *ListEntry) ListID() string       { return e.listID }
func (e *ListEntry) Book() Book           { return e.book }
func (e *ListEntry) Title() string        { return e.book.Title }
func (e *ListEntry) CreatedAt() time.Time { return e.createdAt }
func (e *ListEntry) UpdatedAt() time.Time { return e.createdAt }

func (e *ListEntry) SetID(id string)          { e.id = id }
func (e *ListEntry) SetCreatedAt(t time.Time) { e.createdAt = t }
func (e *ListEntry) SetSequence(sequence int) { e.sequence = sequence }

// Validate checks that the entry belongs to a list and has a title.
func (e *ListEntry) Validate() error {
	if e.listID == "" {
		return fmt.Errorf("entry list ID is required")
	}
	if e.book.Title == "" {
		return fmt.Errorf("entry title is required")
	}
	return nil
}
