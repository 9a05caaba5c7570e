package router

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"libbot/internal/catalog"
	"libbot/internal/formatter"
	"libbot/internal/models"
	"libbot/internal/repositories"
	"libbot/internal/shared"
)

// Fixed user-facing status lines. Internal error detail never reaches chat.
const (
	msgUnrecognized = "Unrecognized command, see ($lib help) for more info"
	msgNoResults    = "No results found"
	msgCouldNotAdd  = "Could not add, see ($lib help) for more info"
	msgListNotFound = "Could not find list"
)

// Reply is the outcome of one command. Exactly one of the payload fields is
// populated: a plain status line, one or more rich messages, or a result
// sequence for the pager to browse.
type Reply struct {
	Text   string
	Embeds []formatter.Embed
	Pager  []models.Book
}

// StartsPager reports whether the reply opens a paged result browser.
func (r *Reply) StartsPager() bool { return len(r.Pager) > 0 }

// Router dispatches parsed commands to the catalog client and list store.
// Dependencies are injected at construction so tests can drive it with fakes.
type Router struct {
	catalog catalog.Searcher
	store   repositories.ListStore
	logger  *log.Logger
	metrics *shared.Metrics
}

// New creates a Router with the given collaborators.
// Logger defaults to the shared logger; metrics may be nil.
func New(searcher catalog.Searcher, store repositories.ListStore, logger *log.Logger, metrics *shared.Metrics) *Router {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Router{catalog: searcher, store: store, logger: logger, metrics: metrics}
}

// Execute parses and runs one command for the invoking user.
//
// Execute never fails: malformed commands, catalog failures and storage
// failures all fold into a friendly reply, and the cause is logged. A reply
// with a populated Pager field asks the caller to open a result browser.
func (r *Router) Execute(ctx context.Context, userID, text string) *Reply {
	cmd, err := Parse(text)
	if err != nil {
		r.logger.Debug("unparsable command", "user", userID, "text", text, "error", err)
		r.metrics.IncError("parse")
		return &Reply{Text: msgUnrecognized}
	}

	r.metrics.IncCommand(string(cmd.Verb))

	switch cmd.Verb {
	case VerbHelp:
		return &Reply{Embeds: []formatter.Embed{formatter.Help()}}
	case VerbSearch:
		return r.search(ctx, cmd)
	case VerbAdd:
		return r.add(ctx, userID, cmd)
	case VerbRemove:
		return r.remove(userID, cmd)
	case VerbShow:
		return r.show(userID, cmd)
	}

	return &Reply{Text: msgUnrecognized}
}

// search queries the catalog and opens a pager over the results.
// An empty or failed response reads as "no results", never as an error.
func (r *Router) search(ctx context.Context, cmd Command) *Reply {
	books, err := r.catalog.Search(ctx, cmd.Query)
	if err != nil {
		r.logger.Warn("catalog search failed", "query", cmd.Query, "error", err)
		r.metrics.IncError("catalog")
		return &Reply{Text: msgNoResults}
	}
	if len(books) == 0 {
		return &Reply{Text: msgNoResults}
	}

	r.metrics.IncPagerSession()
	return &Reply{Pager: books}
}

// add searches the catalog, takes the first result only, and persists it.
// The list-create step is sequenced inside the store before the insert, so
// either the row is written or nothing is.
func (r *Router) add(ctx context.Context, userID string, cmd Command) *Reply {
	books, err := r.catalog.Search(ctx, cmd.Query)
	if err != nil || len(books) == 0 {
		r.logger.Warn("add found no book", "query", cmd.Query, "error", err)
		r.metrics.IncError("catalog")
		return &Reply{Text: msgCouldNotAdd}
	}

	book := books[0]
	listName := cmd.ListName
	if listName == "" {
		listName = models.DefaultListName
	}

	if _, err := r.store.Upsert(userID, listName, book); err != nil {
		r.logger.Error("failed to store book", "user", userID, "list", listName, "error", err)
		r.metrics.IncError("storage")
		return &Reply{Text: msgCouldNotAdd}
	}

	return &Reply{Text: fmt.Sprintf("Added %s to %s", book.Title, listLabel(cmd.ListName))}
}

// remove deletes an entry by exact title. A missing entry and a missing list
// read differently: "could not find <title>" vs "could not find list".
func (r *Router) remove(userID string, cmd Command) *Reply {
	listName := cmd.ListName
	if listName == "" {
		listName = models.DefaultListName
	}

	found, err := r.store.Delete(userID, listName, cmd.Query)
	if err != nil {
		r.logger.Warn("failed to remove book", "user", userID, "list", listName, "error", err)
		r.metrics.IncError("storage")
		return &Reply{Text: msgListNotFound}
	}

	if !found {
		return &Reply{Text: fmt.Sprintf("Could not find %s in %s", cmd.Query, listLabel(cmd.ListName))}
	}
	return &Reply{Text: fmt.Sprintf("Removed %s from %s", cmd.Query, listLabel(cmd.ListName))}
}

// show renders every entry of a list in storage order, one message each.
func (r *Router) show(userID string, cmd Command) *Reply {
	listName := cmd.ListName
	if listName == "" {
		listName = models.DefaultListName
	}

	books, err := r.store.ListAll(userID, listName)
	if err != nil {
		r.logger.Warn("failed to show list", "user", userID, "list", listName, "error", err)
		r.metrics.IncError("storage")
		return &Reply{Text: msgListNotFound}
	}

	if len(books) == 0 {
		return &Reply{Text: fmt.Sprintf("%s is empty", listLabel(cmd.ListName))}
	}

	embeds := make([]formatter.Embed, 0, len(books))
	for _, book := range books {
		embeds = append(embeds, formatter.StoredBook(book))
	}
	return &Reply{Embeds: embeds}
}

// listLabel names a list in reply text: the default list reads as
// "your reading list", everything else by its name.
func listLabel(listName string) string {
	if listName == "" {
		return "your reading list"
	}
	return listName
}
