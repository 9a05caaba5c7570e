package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"libbot/internal/models"
)

var _ list.Item = bookItem{}

// bookItem wraps [models.Book] to implement [list.Item].
type bookItem struct {
	book models.Book
}

func (i bookItem) FilterValue() string { return i.book.Title }
func (i bookItem) Title() string       { return i.book.Title }
func (i bookItem) Description() string {
	desc := i.book.PrimaryAuthor()
	if isbn := i.book.ISBN13; isbn != "" && isbn != "0" {
		desc = fmt.Sprintf("%s • ISBN %s", desc, isbn)
	}
	return desc
}

// ListModel browses one stored reading list.
type ListModel struct {
	inner list.Model
}

// NewListModel creates a browsable view of a reading list's entries.
func NewListModel(listName string, books []models.Book) *ListModel {
	items := make([]list.Item, len(books))
	for i, book := range books {
		items[i] = bookItem{book: book}
	}

	inner := list.New(items, list.NewDefaultDelegate(), 0, 0)
	inner.Title = listName

	return &ListModel{inner: inner}
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.inner.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inner, cmd = m.inner.Update(msg)
	return m, cmd
}

func (m *ListModel) View() string {
	return m.inner.View()
}
