package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

type homeEntry struct {
	label string
	route router.Route
}

// HomeModel is the landing page for authenticated users: a menu of
// destinations, filtered to what the guard would render for the current
// session's role. The guard still re-checks every navigation; the filter
// only keeps dead entries off the screen.
type HomeModel struct {
	ctx  context.Context
	auth service.AuthService

	session models.Session
	items   []homeEntry
	idx     int
}

// NewHomeModel creates the home page. Entries appear once the session
// notice arrives.
func NewHomeModel(ctx context.Context, auth service.AuthService) *HomeModel {
	return &HomeModel{ctx: ctx, auth: auth}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(sessionNotice); ok {
		m.session = notice.session
		m.items = homeEntries(notice.session)
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if len(m.items) == 0 {
			return m, nil
		}
		entry := m.items[m.idx]
		if entry.route == "" {
			return m, m.cmdLogout()
		}
		route := entry.route
		return m, func() tea.Msg { return NavigateTo{Route: route} }
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	if m.session.Authenticated() {
		b.WriteString("Hello, " + m.session.User.Name + "!\n")
		b.WriteString("Your one-stop platform for sustainable living.\n\n")
	}

	labelWidth := lipgloss.Width("Destination")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > labelWidth {
			labelWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-3s │ %-*s\n", "ID", labelWidth, "Destination"))
	b.WriteString("────┼─" + strings.Repeat("─", labelWidth) + "\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %-*s\n", cursor, i+1, labelWidth, item.label))
	}

	return renderPage("E-SAWCTHA", strings.TrimRight(b.String(), "\n"),
		"enter: open │ ↑/↓: navigate")
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func homeEntries(session models.Session) []homeEntry {
	entries := []homeEntry{
		{label: "My Dashboard", route: router.RouteDashboard},
		{label: "Marketplace Listings", route: router.RouteListings},
		{label: "Heart Risk Assessment", route: router.RoutePredict},
		{label: "Latest Assessment Results", route: router.RouteResults},
		{label: "Health Field Guide", route: router.RouteInfo},
	}

	switch session.Role() {
	case models.RoleSeller:
		entries = append(entries,
			homeEntry{label: "Sell an Item", route: router.RouteSell},
			homeEntry{label: "Find Waste Centers", route: router.RouteWasteLookup},
		)
	case models.RoleWasteManagement:
		entries = append(entries,
			homeEntry{label: "Waste Management Dashboard", route: router.RouteWasteDashboard},
		)
	}

	entries = append(entries, homeEntry{label: "Sign Out"})
	return entries
}
