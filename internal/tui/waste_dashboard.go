package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/models"
)

// WasteDashboardModel is the role dashboard for waste-management accounts:
// the facility roster with hours and specialties. Only the guard admits
// users here, and only with the waste-management role.
type WasteDashboardModel struct {
	session models.Session
	centers []models.WasteCenter
	idx     int
}

// NewWasteDashboardModel creates the waste-management dashboard over the
// given facility roster.
func NewWasteDashboardModel(centers []models.WasteCenter) *WasteDashboardModel {
	return &WasteDashboardModel{centers: centers}
}

func (m *WasteDashboardModel) Init() tea.Cmd {
	return nil
}

func (m *WasteDashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(sessionNotice); ok {
		m.session = notice.session
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
		if m.idx < len(m.centers)-1 {
			m.idx++
		}
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Route: router.RouteHome} }
	}

	return m, nil
}

func (m *WasteDashboardModel) View() string {
	var b strings.Builder

	if m.session.Authenticated() {
		b.WriteString("Operator: " + m.session.User.Name + "\n\n")
	}

	for i, center := range m.centers {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s (%.1f★)\n", cursor, center.Name, center.Rating))
		if i == m.idx {
			b.WriteString("    " + center.Address + "\n")
			b.WriteString("    " + center.Hours + "\n")
			b.WriteString("    Accepts: " + strings.Join(center.Specialties, ", ") + "\n")
		}
	}

	return renderPage("WASTE MANAGEMENT DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"↑/↓: facilities │ esc: home")
}
