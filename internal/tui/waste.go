package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

// WasteModel is the public waste-center lookup page. The search starts on
// demand, resolves the client location, and always ends with a roster on
// screen: denied or unsupported locations degrade to the built-in dataset
// with a toast explaining what happened. The loading state clears on every
// outcome.
type WasteModel struct {
	ctx     context.Context
	centers service.WasteCenterService

	roster   []models.WasteCenter
	selected int
	loading  bool
	searched bool
}

// NewWasteModel creates the waste-center lookup page.
func NewWasteModel(ctx context.Context, centers service.WasteCenterService) *WasteModel {
	return &WasteModel{ctx: ctx, centers: centers}
}

// Init implements [tea.Model].
func (m *WasteModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
func (m *WasteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case sessionNotice:
		return m, nil
	case centersLoadedMsg:
		m.loading = false
		m.searched = true
		m.roster = result.centers
		m.selected = 0
		return m, outcomeToast(result.outcome)
	case tea.KeyMsg:
		switch result.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Route: router.RouteHome} }
		case "f":
			if m.loading {
				return m, nil
			}
			m.loading = true
			ctx := m.ctx
			centers := m.centers
			return m, func() tea.Msg {
				roster, outcome := centers.NearbyCenters(ctx)
				return centersLoadedMsg{centers: roster, outcome: outcome}
			}
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.roster)-1 {
				m.selected++
			}
		}
	}
	return m, nil
}

func outcomeToast(outcome service.LocationOutcome) tea.Cmd {
	var toast models.Toast
	switch outcome {
	case service.LocationFound:
		toast = models.Toast{
			Title:       "Location Found",
			Description: "Found nearby waste management centers based on your location.",
		}
	case service.LocationDenied:
		toast = models.Toast{
			Title:       "Location Permission Denied",
			Description: "Please enable location access to find nearby waste centers.",
			Variant:     models.ToastDestructive,
		}
	case service.LocationUnsupported:
		toast = models.Toast{
			Title:       "Location Not Supported",
			Description: "Location services are unavailable. Showing sample waste centers.",
			Variant:     models.ToastDestructive,
		}
	default:
		return nil
	}
	return func() tea.Msg { return toastMsg{toast: toast} }
}

// View implements [tea.Model].
func (m *WasteModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Finding waste management centers near you...")
	case !m.searched:
		b.WriteString("Find recycling and waste management facilities near you.\n\n")
		b.WriteString("[Find Nearby Centers]")
	default:
		for i, center := range m.roster {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s (%s, rated %.1f)\n", cursor, center.Name, center.Distance, center.Rating))
			if i == m.selected {
				b.WriteString("     " + center.Type + "\n")
				b.WriteString("     " + center.Address + "\n")
				b.WriteString("     " + center.Phone + " │ " + center.Hours + "\n")
				b.WriteString("     Accepts: " + strings.Join(center.Specialties, ", ") + "\n")
			}
		}
	}

	hotKeys := "f: find nearby centers │ esc: home"
	if m.searched {
		hotKeys = "↑/↓: select facility │ f: search again │ esc: home"
	}
	return renderPage("WASTE MANAGEMENT CENTERS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
