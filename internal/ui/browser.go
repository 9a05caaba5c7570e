package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"libbot/internal/formatter"
	"libbot/internal/pager"
	"libbot/internal/shared"
)

// BrowserModel pages through search results one book at a time.
//
// It reuses the pager state machine, so traversal behavior (wrap at both
// ends, owner-only input) is identical to the Discord reaction pager.
type BrowserModel struct {
	session *pager.Session
	query   string
	keys    keyMap
	help    help.Model
	notice  string
}

// NewBrowserModel creates a browser over one search's results.
func NewBrowserModel(query string, session *pager.Session) *BrowserModel {
	return &BrowserModel{
		session: session,
		query:   query,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles paging keys by feeding owner inputs into the session.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.session.Close()
			return m, tea.Quit
		case "left", "h":
			m.session.Handle(pager.Input{UserID: m.session.OwnerID(), Direction: pager.Prev})
			return m, nil
		case "right", "l":
			m.session.Handle(pager.Input{UserID: m.session.OwnerID(), Direction: pager.Next})
			return m, nil
		case "o":
			return m, m.openPreview()
		}
	}

	return m, nil
}

// View renders the current book with a position indicator and help line.
func (m *BrowserModel) View() string {
	book := m.session.Current()

	var buf strings.Builder
	buf.WriteString(styles.title.Render(fmt.Sprintf("Results for %q", m.query)))
	buf.WriteString("\n\n")
	buf.WriteString(formatter.PlainText(formatter.Book(book)))
	buf.WriteString("\n")
	buf.WriteString(styles.help.Render(fmt.Sprintf("%d of %d", m.session.Index()+1, m.session.Len())))
	buf.WriteString("\n\n")

	if m.notice != "" {
		buf.WriteString(styles.warn.Render(m.notice))
		buf.WriteString("\n")
	}

	buf.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return buf.String()
}

// openPreview opens the current book's preview link in the system browser.
func (m *BrowserModel) openPreview() tea.Cmd {
	book := m.session.Current()
	url := book.PreviewURL
	if !strings.HasPrefix(url, "http") {
		m.notice = "no preview link for this book"
		return nil
	}

	if err := shared.OpenBrowser(url); err != nil {
		m.notice = fmt.Sprintf("could not open browser: %v", err)
	}
	return nil
}
