// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"libbot/internal/models"
	"libbot/internal/shared"
)

// MockSearcher is a test double for [catalog.Searcher]. It returns the
// configured books and error, recording the last query it was given.
type MockSearcher struct {
	Books     []models.Book
	Err       error
	LastQuery string
}

func (m *MockSearcher) Search(ctx context.Context, query string) ([]models.Book, error) {
	m.LastQuery = query
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Books, nil
}

func (m *MockSearcher) Name() string { return "mock" }

// MockListStore is an in-memory test double for [repositories.ListStore].
// Lists exist once written to; entries keep insertion order and reject
// duplicate titles the way the SQLite store does.
type MockListStore struct {
	Err   error
	lists map[string][]models.Book
}

func listKey(ownerID, listName string) string {
	return ownerID + "\x00" + listName
}

func (m *MockListStore) Upsert(ownerID, listName string, book models.Book) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if m.lists == nil {
		m.lists = map[string][]models.Book{}
	}

	key := listKey(ownerID, listName)
	for _, existing := range m.lists[key] {
		if existing.Title == book.Title {
			return false, nil
		}
	}
	m.lists[key] = append(m.lists[key], book)
	return true, nil
}

func (m *MockListStore) Delete(ownerID, listName, title string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}

	key := listKey(ownerID, listName)
	books, ok := m.lists[key]
	if !ok {
		return false, shared.ErrListNotFound
	}
	for i, book := range books {
		if book.Title == title {
			m.lists[key] = append(books[:i], books[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockListStore) ListAll(ownerID, listName string) ([]models.Book, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	books, ok := m.lists[listKey(ownerID, listName)]
	if !ok {
		return nil, shared.ErrListNotFound
	}
	return books, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
