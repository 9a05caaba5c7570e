package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"libbot/internal/models"
	"libbot/internal/shared"
)

// ListStore defines the storage operations the command router depends on.
type ListStore interface {
	// Upsert ensures the (owner, listname) list exists, then inserts the book
	// unless an entry with the same title is already present. Returns whether
	// a new entry was created; a duplicate title is not an error.
	Upsert(ownerID, listName string, book models.Book) (bool, error)

	// Delete removes the entry with the exact matching title from
	// (owner, listname). Returns whether an entry existed and was removed.
	// Deleting from a list that was never created fails with
	// [shared.ErrListNotFound] rather than returning false.
	Delete(ownerID, listName, title string) (bool, error)

	// ListAll returns all entries of (owner, listname) in insertion order.
	// An unknown list fails with [shared.ErrListNotFound]; an empty list
	// returns an empty slice.
	ListAll(ownerID, listName string) ([]models.Book, error)
}

var _ ListStore = (*ListRepository)(nil)

// ListRepository implements [ListStore] on a shared SQLite connection.
type ListRepository struct {
	db *sql.DB
}

// NewListRepository creates a new [ListRepository] with the given database connection
func NewListRepository(db *sql.DB) *ListRepository {
	return &ListRepository{db: db}
}

// Upsert lazily creates the list row, then inserts the entry with
// INSERT OR IGNORE semantics keyed on (list, title). The list-create step
// runs strictly before the insert so a creation failure prevents the insert.
func (r *ListRepository) Upsert(ownerID, listName string, book models.Book) (bool, error) {
	list, err := r.getList(ownerID, listName)
	if err == sql.ErrNoRows {
		list, err = r.createList(ownerID, listName)
	}
	if err != nil {
		return false, err
	}

	sequence, err := NextSequence(r.db, "list_entries")
	if err != nil {
		return false, fmt.Errorf("failed to generate sequence: %w", err)
	}

	entry := models.NewListEntry(sequence, list.ID(), book)
	entry.SetID(shared.GenerateID())

	if err := entry.Validate(); err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT OR IGNORE INTO list_entries (id, sequence, list_id, title, author, description, isbn10, isbn13, image, preview_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		entry.ID(),
		entry.Sequence(),
		entry.ListID(),
		book.Title,
		book.PrimaryAuthor(),
		book.Description,
		book.ISBN10,
		book.ISBN13,
		book.Image,
		book.PreviewURL,
		entry.CreatedAt(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

// Delete removes an entry by exact title match.
func (r *ListRepository) Delete(ownerID, listName, title string) (bool, error) {
	list, err := r.getList(ownerID, listName)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("%w: %s", shared.ErrListNotFound, listName)
	}
	if err != nil {
		return false, err
	}

	result, err := r.db.Exec("DELETE FROM list_entries WHERE list_id = ? AND title = ?", list.ID(), title)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

// ListAll returns the books of a list in insertion order.
func (r *ListRepository) ListAll(ownerID, listName string) ([]models.Book, error) {
	list, err := r.getList(ownerID, listName)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrListNotFound, listName)
	}
	if err != nil {
		return nil, err
	}

	query := `
		SELECT title, author, description, isbn10, isbn13, image, preview_url
		FROM list_entries
		WHERE list_id = ?
		ORDER BY sequence ASC
	`

	rows, err := r.db.Query(query, list.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var (
			title      string
			author     sql.NullString
			desc       sql.NullString
			isbn10     sql.NullString
			isbn13     sql.NullString
			image      sql.NullString
			previewURL sql.NullString
		)

		if err := rows.Scan(&title, &author, &desc, &isbn10, &isbn13, &image, &previewURL); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		book := models.Book{
			Title:       title,
			Description: desc.String,
			ISBN10:      isbn10.String,
			ISBN13:      isbn13.String,
			Image:       image.String,
			PreviewURL:  previewURL.String,
		}
		if author.Valid && author.String != "" {
			book.Authors = []string{author.String}
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return books, nil
}

// Lists returns every list owned by a user, in creation order.
func (r *ListRepository) Lists(ownerID string) ([]*models.List, error) {
	query := `
		SELECT id, sequence, owner_id, name, created_at, updated_at
		FROM lists
		WHERE owner_id = ?
		ORDER BY sequence ASC
	`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var lists []*models.List
	for rows.Next() {
		list, err := scanList(rows.Scan)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return lists, nil
}

// getList fetches the list row for (owner, name). Returns sql.ErrNoRows
// unwrapped so callers can distinguish a missing list from a query failure.
func (r *ListRepository) getList(ownerID, listName string) (*models.List, error) {
	query := `
		SELECT id, sequence, owner_id, name, created_at, updated_at
		FROM lists
		WHERE owner_id = ? AND name = ?
	`

	row := r.db.QueryRow(query, ownerID, listName)
	list, err := scanList(row.Scan)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan list: %w", err)
	}
	return list, nil
}

// createList inserts a new list row with generated ID and sequence.
func (r *ListRepository) createList(ownerID, listName string) (*models.List, error) {
	sequence, err := NextSequence(r.db, "lists")
	if err != nil {
		return nil, fmt.Errorf("failed to generate sequence: %w", err)
	}

	list := models.NewList(sequence, ownerID, listName)
	list.SetID(shared.GenerateID())

	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT OR IGNORE INTO lists (id, sequence, owner_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err := r.db.Exec(query, list.ID(), list.Sequence(), ownerID, listName, list.CreatedAt(), list.UpdatedAt()); err != nil {
		return nil, fmt.Errorf("failed to insert list: %w", err)
	}

	// A concurrent command may have created the same list between the lookup
	// and the insert; re-read so every caller sees the winning row.
	created, err := r.getList(ownerID, listName)
	if err != nil {
		return nil, fmt.Errorf("failed to read back list: %w", err)
	}
	return created, nil
}

// scanList scans one list row via the provided scan function.
func scanList(scan func(dest ...any) error) (*models.List, error) {
	var (
		id        string
		sequence  int
		ownerID   string
		name      string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := scan(&id, &sequence, &ownerID, &name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	list := models.NewList(sequence, ownerID, name)
	list.SetID(id)
	list.SetCreatedAt(createdAt)
	list.SetUpdatedAt(updatedAt)
	return list, nil
}
