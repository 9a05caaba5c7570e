package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"libbot/internal/models"
	"libbot/internal/shared"
	tu "libbot/internal/testing"
)

// testApp builds the CLI root over a runner with fakes injected.
func testApp(searcher *tu.MockSearcher, store *tu.MockListStore, output *bytes.Buffer) *Runner {
	return NewRunner(RunnerOpts{
		Config:  shared.DefaultConfig(),
		Catalog: searcher,
		Store:   store,
		Logger:  shared.NewLogger(&bytes.Buffer{}),
		Output:  output,
	})
}

func runCommand(t *testing.T, r *Runner, args ...string) error {
	t.Helper()

	root := rootCommand(r)
	return root.Run(context.Background(), append([]string{"libbot"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			searcher := &tu.MockSearcher{}
			store := &tu.MockListStore{}
			metrics := shared.NewMetrics()

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Catalog: searcher,
				Store:   store,
				Logger:  logger,
				Output:  output,
				Metrics: metrics,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.catalog != searcher {
				t.Error("expected catalog to be set")
			}
			if runner.store != store {
				t.Error("expected store to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.metrics != metrics {
				t.Error("expected metrics to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil metrics uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.metrics == nil {
				t.Error("expected default metrics to be set")
			}
		})
	})

	t.Run("register wires all commands", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}

		for _, want := range []string{"setup", "serve", "search", "list"} {
			if !names[want] {
				t.Errorf("expected %s command to be registered", want)
			}
		}
	})

	t.Run("writePlain surfaces writer failures", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
		if err := runner.writePlain("hello"); err == nil {
			t.Error("expected write failure to surface")
		}
	})
}

func TestSearchCommand(t *testing.T) {
	t.Run("plain prints every result", func(t *testing.T) {
		output := &bytes.Buffer{}
		searcher := &tu.MockSearcher{Books: []models.Book{
			{Title: "The Dispossessed", Authors: []string{"Ursula K. Le Guin"}},
			{Title: "The Lathe of Heaven", Authors: []string{"Ursula K. Le Guin"}},
		}}
		r := testApp(searcher, &tu.MockListStore{}, output)

		if err := runCommand(t, r, "search", "--plain", "le", "guin"); err != nil {
			t.Fatalf("search failed: %v", err)
		}

		if searcher.LastQuery != "le guin" {
			t.Errorf("expected joined query, got %q", searcher.LastQuery)
		}
		got := output.String()
		if !strings.Contains(got, "1. The Dispossessed") || !strings.Contains(got, "2. The Lathe of Heaven") {
			t.Errorf("expected numbered results, got %q", got)
		}
	})

	t.Run("no results", func(t *testing.T) {
		output := &bytes.Buffer{}
		r := testApp(&tu.MockSearcher{}, &tu.MockListStore{}, output)

		if err := runCommand(t, r, "search", "--plain", "nothing"); err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if !strings.Contains(output.String(), "No results found") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("plain surfaces writer failures", func(t *testing.T) {
		searcher := &tu.MockSearcher{Books: []models.Book{{Title: "The Dispossessed"}}}
		r := NewRunner(RunnerOpts{
			Config:  shared.DefaultConfig(),
			Catalog: searcher,
			Store:   &tu.MockListStore{},
			Logger:  shared.NewLogger(&bytes.Buffer{}),
			Output:  &tu.FWriter{},
		})

		if err := runCommand(t, r, "search", "--plain", "le", "guin"); err == nil {
			t.Error("expected the write failure to surface")
		}
	})

	t.Run("missing query", func(t *testing.T) {
		r := testApp(&tu.MockSearcher{}, &tu.MockListStore{}, &bytes.Buffer{})
		if err := runCommand(t, r, "search", "--plain"); err == nil {
			t.Error("expected an error without a query")
		}
	})
}

func TestListCommands(t *testing.T) {
	t.Run("add stores the first result", func(t *testing.T) {
		output := &bytes.Buffer{}
		store := &tu.MockListStore{}
		searcher := &tu.MockSearcher{Books: []models.Book{{Title: "The Dispossessed"}}}
		r := testApp(searcher, store, output)

		if err := runCommand(t, r, "list", "add", "le", "guin"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if !strings.Contains(output.String(), "Added The Dispossessed to your reading list") {
			t.Errorf("unexpected output %q", output.String())
		}

		books, err := store.ListAll(localUser, models.DefaultListName)
		if err != nil {
			t.Fatalf("failed to read back list: %v", err)
		}
		if len(books) != 1 {
			t.Errorf("expected one stored book, got %d", len(books))
		}
	})

	t.Run("add to a named list", func(t *testing.T) {
		output := &bytes.Buffer{}
		store := &tu.MockListStore{}
		searcher := &tu.MockSearcher{Books: []models.Book{{Title: "The Dispossessed"}}}
		r := testApp(searcher, store, output)

		if err := runCommand(t, r, "list", "add", "--list", "scifi", "le", "guin"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if !strings.Contains(output.String(), "Added The Dispossessed to scifi") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("remove by exact title", func(t *testing.T) {
		output := &bytes.Buffer{}
		store := &tu.MockListStore{}
		store.Upsert(localUser, models.DefaultListName, models.Book{Title: "The Dispossessed"})
		r := testApp(&tu.MockSearcher{}, store, output)

		if err := runCommand(t, r, "list", "remove", "The", "Dispossessed"); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		if !strings.Contains(output.String(), "Removed The Dispossessed from your reading list") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("show prints entries in order", func(t *testing.T) {
		output := &bytes.Buffer{}
		store := &tu.MockListStore{}
		store.Upsert(localUser, "scifi", models.Book{Title: "The Dispossessed", Authors: []string{"Ursula K. Le Guin"}})
		store.Upsert(localUser, "scifi", models.Book{Title: "The Lathe of Heaven", Authors: []string{"Ursula K. Le Guin"}})
		r := testApp(&tu.MockSearcher{}, store, output)

		if err := runCommand(t, r, "list", "show", "--list", "scifi"); err != nil {
			t.Fatalf("show failed: %v", err)
		}

		got := output.String()
		first := strings.Index(got, "The Dispossessed")
		second := strings.Index(got, "The Lathe of Heaven")
		if first < 0 || second < 0 || second < first {
			t.Errorf("expected entries in insertion order, got %q", got)
		}
	})

	t.Run("show unknown list", func(t *testing.T) {
		output := &bytes.Buffer{}
		r := testApp(&tu.MockSearcher{}, &tu.MockListStore{}, output)

		if err := runCommand(t, r, "list", "show", "--list", "nosuch"); err != nil {
			t.Fatalf("show failed: %v", err)
		}
		if !strings.Contains(output.String(), "Could not find list") {
			t.Errorf("unexpected output %q", output.String())
		}
	})
}
