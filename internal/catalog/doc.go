// Package catalog defines the [Searcher] interface for book catalog providers and implements it for the Google Books volumes API.
//
// # Searcher Interface
//
// The router depends on the interface only, so tests drive it with fakes and
// alternative catalogs can be added without touching command handling.
//
// # Google Books Implementation
//
// [GoogleBooksService] issues one rate-limited GET per search, authenticated
// with a static API key. Responses are normalized per field: a malformed or
// missing field falls back to a sentinel value ("Not Found" for text, "0"
// for ISBNs, "" for the thumbnail) instead of rejecting the whole result
// set. The call fails only when the HTTP request itself fails or the payload
// carries no items key at all; an empty result list is a valid outcome.
//
// # Error Handling
//
// Typed errors from the shared package:
//   - [shared.ErrAPIRequest] : HTTP request failed or non-2xx status
//   - [shared.ErrNoResults] : payload carried no items key
package catalog
