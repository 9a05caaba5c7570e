package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"libbot/internal/formatter"
	"libbot/internal/pager"
	"libbot/internal/shared"
	"libbot/internal/ui"
)

// Search queries the catalog from the terminal. By default it opens the
// interactive result browser; --plain prints every result instead.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd); err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	searcher, err := r.searcher()
	if err != nil {
		return err
	}

	books, err := searcher.Search(ctx, query)
	if err != nil {
		r.logger.Warn("catalog search failed", "query", query, "error", err)
		return r.writePlainln("No results found")
	}
	if len(books) == 0 {
		return r.writePlainln("No results found")
	}

	if cmd.Bool("plain") {
		for i, book := range books {
			if err := r.writePlain("%d. %s", i+1, formatter.PlainText(formatter.Book(book))); err != nil {
				return err
			}
		}
		return nil
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/libbot-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, log.DebugLevel)
	r.SetLogger(fileLogger)

	session := pager.NewSession(localUser, books)
	model := ui.NewBrowserModel(query, session)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
