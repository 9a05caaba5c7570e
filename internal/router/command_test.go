package router

import (
	"errors"
	"testing"

	"libbot/internal/shared"
)

func TestExtractCommand(t *testing.T) {
	t.Run("with prefix and command text", func(t *testing.T) {
		text, ok := ExtractCommand("$lib search lord of the rings")
		if !ok {
			t.Fatal("expected message to be addressed to the bot")
		}
		if text != "search lord of the rings" {
			t.Errorf("expected command text, got %q", text)
		}
	})

	t.Run("with bare prefix", func(t *testing.T) {
		text, ok := ExtractCommand("$lib")
		if !ok {
			t.Fatal("expected bare prefix to be addressed to the bot")
		}
		if text != "" {
			t.Errorf("expected empty command text, got %q", text)
		}
	})

	t.Run("without prefix", func(t *testing.T) {
		if _, ok := ExtractCommand("hello there"); ok {
			t.Error("expected plain chatter to be ignored")
		}
	})

	t.Run("with prefix glued to a longer word", func(t *testing.T) {
		if _, ok := ExtractCommand("$library is great"); ok {
			t.Error("expected $library not to read as a command")
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		cmd, err := Parse("help")
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if cmd.Verb != VerbHelp {
			t.Errorf("expected help verb, got %q", cmd.Verb)
		}
	})

	t.Run("search with multi-word query", func(t *testing.T) {
		cmd, err := Parse("search the left hand of darkness")
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if cmd.Verb != VerbSearch {
			t.Errorf("expected search verb, got %q", cmd.Verb)
		}
		if cmd.Query != "the left hand of darkness" {
			t.Errorf("expected full query, got %q", cmd.Query)
		}
		if cmd.ListName != "" {
			t.Errorf("expected no list name, got %q", cmd.ListName)
		}
	})

	t.Run("search without query", func(t *testing.T) {
		if _, err := Parse("search"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("add to default list", func(t *testing.T) {
		cmd, err := Parse("add dune")
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if cmd.Verb != VerbAdd {
			t.Errorf("expected add verb, got %q", cmd.Verb)
		}
		if cmd.ListName != "" {
			t.Errorf("expected default list, got %q", cmd.ListName)
		}
		if cmd.Query != "dune" {
			t.Errorf("expected query dune, got %q", cmd.Query)
		}
	})

	t.Run("add to named list", func(t *testing.T) {
		cmd, err := Parse("scifi add dune messiah")
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if cmd.Verb != VerbAdd {
			t.Errorf("expected add verb, got %q", cmd.Verb)
		}
		if cmd.ListName != "scifi" {
			t.Errorf("expected list scifi, got %q", cmd.ListName)
		}
		if cmd.Query != "dune messiah" {
			t.Errorf("expected query, got %q", cmd.Query)
		}
	})

	t.Run("query containing an action word", func(t *testing.T) {
		cmd, err := Parse("search how to add numbers")
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if cmd.Query != "how to add numbers" {
			t.Errorf("expected action word kept in query, got %q", cmd.Query)
		}
	})

	t.Run("remove from named list", func(t *testing.T) {
		cmd, err := Parse("scifi remove dune")
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if cmd.Verb != VerbRemove {
			t.Errorf("expected remove verb, got %q", cmd.Verb)
		}
		if cmd.ListName != "scifi" {
			t.Errorf("expected list scifi, got %q", cmd.ListName)
		}
	})

	t.Run("named add without query", func(t *testing.T) {
		if _, err := Parse("scifi add"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("show default list", func(t *testing.T) {
		cmd, err := Parse("show")
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if cmd.Verb != VerbShow {
			t.Errorf("expected show verb, got %q", cmd.Verb)
		}
		if cmd.ListName != "" {
			t.Errorf("expected default list, got %q", cmd.ListName)
		}
	})

	t.Run("show named list", func(t *testing.T) {
		cmd, err := Parse("show scifi")
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if cmd.ListName != "scifi" {
			t.Errorf("expected list scifi, got %q", cmd.ListName)
		}
	})

	t.Run("show with multi-token listname", func(t *testing.T) {
		if _, err := Parse("show my books"); !errors.Is(err, shared.ErrInvalidListName) {
			t.Errorf("expected ErrInvalidListName, got %v", err)
		}
	})

	t.Run("listname with special characters", func(t *testing.T) {
		if _, err := Parse("sci*fi add dune"); !errors.Is(err, shared.ErrInvalidListName) {
			t.Errorf("expected ErrInvalidListName, got %v", err)
		}
	})

	t.Run("show with reserved word as listname", func(t *testing.T) {
		if _, err := Parse("show add"); !errors.Is(err, shared.ErrInvalidListName) {
			t.Errorf("expected ErrInvalidListName, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		if _, err := Parse(""); !errors.Is(err, shared.ErrInvalidCommand) {
			t.Errorf("expected ErrInvalidCommand, got %v", err)
		}
	})

	t.Run("unknown verb", func(t *testing.T) {
		if _, err := Parse("dance"); !errors.Is(err, shared.ErrInvalidCommand) {
			t.Errorf("expected ErrInvalidCommand, got %v", err)
		}
	})
}
