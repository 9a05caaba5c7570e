package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"libbot/internal/formatter"
	"libbot/internal/models"
	"libbot/internal/shared"
	"libbot/internal/ui"
)

// ListAdd runs an add command through the router, exactly as a chat message
// would, and prints the reply.
func (r *Runner) ListAdd(ctx context.Context, cmd *cli.Command) error {
	return r.runListCommand(ctx, cmd, "add")
}

// ListRemove runs a remove command through the router and prints the reply.
func (r *Runner) ListRemove(ctx context.Context, cmd *cli.Command) error {
	return r.runListCommand(ctx, cmd, "remove")
}

// runListCommand assembles the chat-grammar command text for add/remove and
// executes it as the local user.
func (r *Runner) runListCommand(ctx context.Context, cmd *cli.Command, verb string) error {
	if err := r.reloadConfig(cmd); err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("%w: %s query", shared.ErrMissingArgument, verb)
	}

	text := fmt.Sprintf("%s %s", verb, query)
	if listName := cmd.String("list"); listName != "" {
		text = fmt.Sprintf("%s %s %s", listName, verb, query)
	}

	commandRouter, err := r.commandRouter()
	if err != nil {
		return err
	}

	reply := commandRouter.Execute(ctx, localUser, text)
	return r.writePlainln("%s", reply.Text)
}

// ListShow prints a list's entries, or browses them with --tui.
func (r *Runner) ListShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd); err != nil {
		return err
	}

	listName := cmd.String("list")
	if listName == "" {
		listName = models.DefaultListName
	}

	store, err := r.listStore()
	if err != nil {
		return err
	}

	books, err := store.ListAll(localUser, listName)
	if err != nil {
		r.logger.Debug("failed to show list", "list", listName, "error", err)
		return r.writePlainln("Could not find list")
	}

	if len(books) == 0 {
		return r.writePlainln("%s is empty", listName)
	}

	if cmd.Bool("tui") {
		model := ui.NewListModel(listName, books)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	}

	for _, book := range books {
		if err := r.writePlain("%s", formatter.PlainText(formatter.StoredBook(book))); err != nil {
			return err
		}
	}
	return nil
}
