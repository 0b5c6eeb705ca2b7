package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

// ListingsModel is the marketplace browser. It has two modes: a scrollable
// overview of every listing and a detail view for one of them. Opening the
// detail view counts a view on the listing; "c" on the detail view copies the
// seller's phone number to the system clipboard. The sell page lands here
// with a [listingOpenedMsg] payload so the freshly posted item opens
// straight away, without counting a view by its own seller.
type ListingsModel struct {
	ctx      context.Context
	listings service.ListingService

	items    []models.Listing
	selected int
	loading  bool
	err      error

	detail  *models.Listing
	session models.Session
}

// NewListingsModel creates the marketplace browser page.
func NewListingsModel(ctx context.Context, listings service.ListingService) *ListingsModel {
	return &ListingsModel{ctx: ctx, listings: listings}
}

// Init implements [tea.Model]. The roster reloads every time the page opens
// so freshly posted items appear without restarting.
func (m *ListingsModel) Init() tea.Cmd {
	m.loading = true
	m.err = nil
	m.detail = nil

	ctx := m.ctx
	listings := m.listings
	return func() tea.Msg {
		items, err := listings.All(ctx)
		return listingsLoadedMsg{items: items, err: err}
	}
}

// Update implements [tea.Model].
func (m *ListingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case sessionNotice:
		m.session = result.session
		return m, nil
	case listingsLoadedMsg:
		m.loading = false
		m.err = result.err
		m.items = result.items
		if m.selected >= len(m.items) {
			m.selected = 0
		}
		return m, nil
	case listingOpenedMsg:
		m.loading = false
		if result.err != nil {
			m.err = result.err
			return m, nil
		}
		opened := result.listing
		m.detail = &opened
		return m, nil
	case copiedMsg:
		toast := models.Toast{Title: "Copied!", Description: "Phone number copied to clipboard."}
		if result.err != nil {
			toast = models.Toast{
				Title:       "Copy failed",
				Description: "Clipboard is not available on this system.",
				Variant:     models.ToastDestructive,
			}
		}
		return m, func() tea.Msg { return toastMsg{toast: toast} }
	case tea.KeyMsg:
		return m.handleKey(result)
	}
	return m, nil
}

func (m *ListingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail != nil {
		switch msg.String() {
		case "esc":
			m.detail = nil
			return m, nil
		case "c":
			phone := m.detail.Phone
			return m, func() tea.Msg {
				return copiedMsg{err: clipboard.WriteAll(phone)}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Route: router.RouteHome} }
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "s":
		if m.session.Role() == models.RoleSeller {
			return m, func() tea.Msg { return NavigateTo{Route: router.RouteSell} }
		}
	case "enter":
		if m.loading || len(m.items) == 0 {
			return m, nil
		}
		m.loading = true
		id := m.items[m.selected].ID
		ctx := m.ctx
		listings := m.listings
		return m, func() tea.Msg {
			opened, err := listings.Open(ctx, id)
			return listingOpenedMsg{listing: opened, err: err}
		}
	}
	return m, nil
}

// View implements [tea.Model].
func (m *ListingsModel) View() string {
	if m.detail != nil {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m *ListingsModel) viewList() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading listings...")
	case m.err != nil:
		b.WriteString("Could not load listings. Try again later.")
	case len(m.items) == 0:
		b.WriteString("No items listed yet. Be the first to sell something!")
	default:
		b.WriteString("  Title                          │ Price      │ Category\n")
		b.WriteString("  ───────────────────────────────┼────────────┼────────────\n")
		for i, item := range m.items {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-31s│ %-11s│ %s\n",
				cursor, fitText(item.Title, 30), formatPrice(item.Price), item.Category))
		}
	}

	hotKeys := "↑/↓: select │ enter: open │ esc: home"
	if m.session.Role() == models.RoleSeller {
		hotKeys = "↑/↓: select │ enter: open │ s: sell an item │ esc: home"
	}
	return renderPage("MARKETPLACE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ListingsModel) viewDetail() string {
	item := m.detail

	var b strings.Builder
	b.WriteString(item.Title + "\n\n")
	b.WriteString("Price:     " + formatPrice(item.Price) + "\n")
	b.WriteString("Category:  " + string(item.Category) + "\n")
	b.WriteString("Condition: " + string(item.Condition) + "\n")
	if item.Location != "" {
		b.WriteString("Location:  " + item.Location + "\n")
	}
	if item.Phone != "" {
		b.WriteString("Contact:   " + item.Phone + "\n")
	}
	b.WriteString(fmt.Sprintf("Posted:    %s │ %d views\n", item.PostedAt.Format("2006-01-02"), item.Views))
	if item.Description != "" {
		b.WriteString("\n" + item.Description + "\n")
	}

	hotKeys := "esc: back to listings"
	if item.Phone != "" {
		hotKeys = "c: copy phone │ esc: back to listings"
	}
	return renderPage("LISTING DETAILS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
