package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Catalog errors
	ErrAPIRequest = fmt.Errorf("API request failed")
	ErrNoResults  = fmt.Errorf("no results")

	// List storage errors
	ErrListNotFound  = fmt.Errorf("list not found")
	ErrEntryNotFound = fmt.Errorf("entry not found")

	// Input validation errors
	ErrInvalidCommand  = fmt.Errorf("invalid command")
	ErrInvalidListName = fmt.Errorf("invalid list name")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
