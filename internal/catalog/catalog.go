// package catalog defines interface Searcher for querying book catalogs
package catalog

import (
	"context"

	"libbot/internal/models"
)

// Searcher defines the interface for book catalog providers that can resolve
// a free-text query into an ordered sequence of book records.
type Searcher interface {
	// Search issues one query against the catalog and returns the results in
	// catalog order. An empty slice with a nil error means the catalog
	// answered but matched nothing.
	Search(ctx context.Context, query string) ([]models.Book, error)

	// Name returns the name of the catalog (e.g., "Google Books")
	Name() string
}
