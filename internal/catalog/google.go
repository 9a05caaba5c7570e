// Google Books implementation of [Searcher]
//
// Volume payload types based on https://developers.google.com/books/docs/v1/reference/volumes
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"libbot/internal/models"
	"libbot/internal/shared"
)

const googleBooksBaseURL = "https://www.googleapis.com/books/v1"

// Sentinel values substituted for fields the upstream payload omits.
const (
	textSentinel  = "Not Found"
	isbnSentinel  = "0"
	imageSentinel = ""
)

// volumesResponse is the top-level volumes list payload.
// Items is a pointer so a payload with no items key at all can be told apart
// from one with an empty list.
type volumesResponse struct {
	TotalItems int       `json:"totalItems"`
	Items      *[]volume `json:"items"`
}

// volume represents one volume record.
type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

// volumeInfo carries the book metadata of a volume.
type volumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	AverageRating       float64              `json:"averageRating"`
	Description         string               `json:"description"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
	ImageLinks          imageLinks           `json:"imageLinks"`
	PreviewLink         string               `json:"previewLink"`
}

// industryIdentifier is one ISBN (or other identifier) of a volume.
type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// imageLinks holds the cover thumbnails of a volume.
type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// GoogleBooksService implements [Searcher] against the Google Books volumes API.
// Authentication is a static API key; there is no caching and no retry.
type GoogleBooksService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *shared.Metrics
}

// GoogleBooksOpts contains optional dependencies for a [GoogleBooksService].
type GoogleBooksOpts struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Metrics    *shared.Metrics
}

// NewGoogleBooksService creates a Google Books catalog client with the given API key.
func NewGoogleBooksService(apiKey string, opts GoogleBooksOpts) (*GoogleBooksService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: books API key", shared.ErrMissingCredentials)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = googleBooksBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Limiter == nil {
		opts.Limiter = rate.NewLimiter(rate.Limit(5), 1)
	}

	return &GoogleBooksService{
		baseURL:    opts.BaseURL,
		apiKey:     apiKey,
		httpClient: opts.HTTPClient,
		limiter:    opts.Limiter,
		metrics:    opts.Metrics,
	}, nil
}

func (g *GoogleBooksService) Name() string {
	return "Google Books"
}

// Search issues one volumes query and normalizes each result.
func (g *GoogleBooksService) Search(ctx context.Context, query string) ([]models.Book, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/volumes?q=%s&key=%s", g.baseURL, url.QueryEscape(query), url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	g.metrics.IncCatalogRequest()
	start := time.Now()

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	g.metrics.ObserveCatalogDuration(time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Items == nil {
		return nil, fmt.Errorf("%w: response carried no items", shared.ErrNoResults)
	}

	books := make([]models.Book, 0, len(*payload.Items))
	for _, item := range *payload.Items {
		books = append(books, normalizeVolume(item))
	}

	return books, nil
}

// normalizeVolume maps one volume record onto a [models.Book], substituting
// sentinels per field so a partial upstream record never rejects the set.
func normalizeVolume(v volume) models.Book {
	info := v.VolumeInfo

	book := models.Book{
		Title:       info.Title,
		Authors:     info.Authors,
		Rating:      info.AverageRating,
		Description: info.Description,
		Image:       info.ImageLinks.Thumbnail,
		PreviewURL:  info.PreviewLink,
		ISBN10:      isbnSentinel,
		ISBN13:      isbnSentinel,
	}

	if book.Title == "" {
		book.Title = textSentinel
	}
	if book.Description == "" {
		book.Description = textSentinel
	}
	if book.PreviewURL == "" {
		book.PreviewURL = textSentinel
	}
	if book.Image == "" {
		book.Image = imageSentinel
	}

	for _, ident := range info.IndustryIdentifiers {
		switch ident.Type {
		case "ISBN_10":
			book.ISBN10 = ident.Identifier
		case "ISBN_13":
			book.ISBN13 = ident.Identifier
		}
	}

	return book
}
