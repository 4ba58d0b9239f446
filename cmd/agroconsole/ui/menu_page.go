package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// pageID identifies the navigable pages.
type pageID int

const (
	pageLogin pageID = iota
	pageMenu
	pageSeedProductions
	pageFarmers
)

// MenuPage is the landing page after login.
type MenuPage struct {
	cursor  int
	entries []menuEntry
	styles  Styles
}

type menuEntry struct {
	label string
	page  pageID
}

// NewMenuPage builds the menu.
func NewMenuPage(styles Styles) MenuPage {
	return MenuPage{
		entries: []menuEntry{
			{label: "Seed productions", page: pageSeedProductions},
			{label: "Farmers", page: pageFarmers},
		},
		styles: styles,
	}
}

// Update handles menu navigation.
func (p MenuPage) Update(msg tea.Msg) (MenuPage, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case "enter":
		page := p.entries[p.cursor].page
		return p, func() tea.Msg { return openPageMsg{page: page} }
	}

	return p, nil
}

// View renders the menu.
func (p MenuPage) View() string {
	header := p.styles.Title.Render("Welcome to Sistema IPA")

	var b strings.Builder
	for i, entry := range p.entries {
		if i == p.cursor {
			b.WriteString(p.styles.Selected.Render(" " + entry.label + " "))
		} else {
			b.WriteString(p.styles.Label.Render("  " + entry.label))
		}
		if i < len(p.entries)-1 {
			b.WriteString("\n")
		}
	}

	help := p.styles.Help.Render("up/down select · enter open · ctrl+c quit")
	return joinSections(header, b.String(), help)
}
