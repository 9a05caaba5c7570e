package router

import (
	"fmt"
	"regexp"
	"strings"

	"libbot/internal/shared"
)

// Prefix marks a chat message as a bot command.
const Prefix = "$lib"

// Verb is one of the recognized command actions.
type Verb string

const (
	VerbHelp   Verb = "help"
	VerbSearch Verb = "search"
	VerbAdd    Verb = "add"
	VerbRemove Verb = "remove"
	VerbShow   Verb = "show"
)

// Command is one parsed command: action, target list and free-text query.
// An empty ListName addresses the default reading list.
type Command struct {
	Verb     Verb
	ListName string
	Query    string
}

var listNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ExtractCommand strips the command prefix from a chat message.
// Returns the command text and whether the message was addressed to the bot.
func ExtractCommand(content string) (string, bool) {
	if !strings.HasPrefix(content, Prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(content, Prefix)
	if rest != "" && !strings.HasPrefix(rest, " ") {
		// "$library" is not a command.
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// Parse splits command text into a [Command].
//
// The first token is either a verb, or a listname followed by "add" or
// "remove". Splitting is positional rather than substring-based, so a
// listname containing an action word never breaks the parse.
func Parse(text string) (Command, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", shared.ErrInvalidCommand)
	}

	switch Verb(tokens[0]) {
	case VerbHelp:
		return Command{Verb: VerbHelp}, nil

	case VerbSearch:
		if len(tokens) < 2 {
			return Command{}, fmt.Errorf("%w: search query", shared.ErrMissingArgument)
		}
		return Command{Verb: VerbSearch, Query: strings.Join(tokens[1:], " ")}, nil

	case VerbAdd, VerbRemove:
		if len(tokens) < 2 {
			return Command{}, fmt.Errorf("%w: %s query", shared.ErrMissingArgument, tokens[0])
		}
		return Command{Verb: Verb(tokens[0]), Query: strings.Join(tokens[1:], " ")}, nil

	case VerbShow:
		switch len(tokens) {
		case 1:
			return Command{Verb: VerbShow}, nil
		case 2:
			name, err := parseListName(tokens[1])
			if err != nil {
				return Command{}, err
			}
			return Command{Verb: VerbShow, ListName: name}, nil
		default:
			return Command{}, fmt.Errorf("%w: listname must be a single token", shared.ErrInvalidListName)
		}
	}

	// <listname> add|remove <query>
	if len(tokens) >= 2 {
		verb := Verb(tokens[1])
		if verb == VerbAdd || verb == VerbRemove {
			name, err := parseListName(tokens[0])
			if err != nil {
				return Command{}, err
			}
			if len(tokens) < 3 {
				return Command{}, fmt.Errorf("%w: %s query", shared.ErrMissingArgument, verb)
			}
			return Command{Verb: verb, ListName: name, Query: strings.Join(tokens[2:], " ")}, nil
		}
	}

	return Command{}, fmt.Errorf("%w: %q", shared.ErrInvalidCommand, tokens[0])
}

// parseListName validates a bare listname token.
func parseListName(token string) (string, error) {
	switch Verb(token) {
	case VerbHelp, VerbSearch, VerbAdd, VerbRemove, VerbShow:
		return "", fmt.Errorf("%w: %q is a reserved word", shared.ErrInvalidListName, token)
	}
	if !listNamePattern.MatchString(token) {
		return "", fmt.Errorf("%w: %q", shared.ErrInvalidListName, token)
	}
	return token, nil
}
