// Package pager implements the paged browser for search results.
//
// A [Session] is a small state machine over one search's ordered results:
// it is either displaying an index or closed. Input is an abstract
// direction event carrying the identity of the reacting user, so the same
// machine drives Discord reaction paging and the terminal UI without a
// live messaging connection.
package pager

import (
	"context"
	"time"

	"libbot/internal/models"
)

// DefaultTimeout closes a session after this long without a qualifying input.
const DefaultTimeout = 60 * time.Second

// Direction identifies one of the two paging controls.
type Direction int

const (
	None Direction = iota
	Prev
	Next
)

// Input is one paging event: who reacted and which way.
type Input struct {
	UserID    string
	Direction Direction
}

// Renderer displays the current result of a session and withdraws the
// paging controls when the session closes. Rendering replaces the visible
// message in place; it never posts a new one.
type Renderer interface {
	Render(ctx context.Context, book models.Book, index, total int) error
	Close(ctx context.Context) error
}

// Session is the paging state over one search's results.
// The displayed index is always valid modulo the result count: it wraps at
// both ends and is never out of range.
type Session struct {
	ownerID string
	books   []models.Book
	index   int
	closed  bool
}

// NewSession creates a session owned by the requesting user, displaying the
// first result. The book slice must be non-empty.
func NewSession(ownerID string, books []models.Book) *Session {
	return &Session{ownerID: ownerID, books: books}
}

// OwnerID returns the requesting user's identity.
func (s *Session) OwnerID() string { return s.ownerID }

// Index returns the currently displayed index.
func (s *Session) Index() int { return s.index }

// Len returns the number of results in the session.
func (s *Session) Len() int { return len(s.books) }

// Current returns the currently displayed book.
func (s *Session) Current() models.Book { return s.books[s.index] }

// Closed reports whether the session has ended.
func (s *Session) Closed() bool { return s.closed }

// Close ends the session. Further inputs are ignored.
func (s *Session) Close() { s.closed = true }

// Handle applies one input to the session and reports whether the displayed
// index changed. Inputs from any user other than the owner, inputs without a
// recognized direction, and inputs after close are ignored.
func (s *Session) Handle(in Input) bool {
	if s.closed || in.UserID != s.ownerID {
		return false
	}

	switch in.Direction {
	case Prev:
		s.index--
		if s.index < 0 {
			s.index = len(s.books) - 1
		}
	case Next:
		s.index++
		if s.index == len(s.books) {
			s.index = 0
		}
	default:
		return false
	}

	return true
}

// Run drives a session until it closes: each accepted input re-renders the
// current result in place, and the session closes silently once no
// qualifying input arrives within the timeout. Closing is not an error.
//
// The first result is rendered before Run is called; Run only renders on
// state changes.
func Run(ctx context.Context, s *Session, inputs <-chan Input, r Renderer, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return r.Close(ctx)

		case <-timer.C:
			s.Close()
			return r.Close(ctx)

		case in, ok := <-inputs:
			if !ok {
				s.Close()
				return r.Close(ctx)
			}

			if !s.Handle(in) {
				continue
			}

			if err := r.Render(ctx, s.Current(), s.Index(), s.Len()); err != nil {
				s.Close()
				// Withdraw the controls even on a failed render; the
				// session is over either way.
				r.Close(ctx)
				return err
			}

			// The timeout is idle time, not session lifetime.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(timeout)
		}
	}
}
