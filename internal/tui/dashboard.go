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

// DashboardModel shows the account summary and the most recent assessment
// snapshot, when one exists.
type DashboardModel struct {
	ctx         context.Context
	assessments service.AssessmentService

	session models.Session
	last    *models.AssessmentResult
}

// NewDashboardModel creates the dashboard page.
func NewDashboardModel(ctx context.Context, assessments service.AssessmentService) *DashboardModel {
	return &DashboardModel{ctx: ctx, assessments: assessments}
}

// Init reloads the last assessment each time the page opens.
func (m *DashboardModel) Init() tea.Cmd {
	ctx := m.ctx
	assessments := m.assessments
	return func() tea.Msg {
		result, err := assessments.Last(ctx)
		return lastAssessmentMsg{result: result, err: err}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case sessionNotice:
		m.session = v.session
		return m, nil
	case lastAssessmentMsg:
		// An absent record is the empty state, not an error worth showing.
		if v.err != nil {
			m.last = nil
			return m, nil
		}
		result := v.result
		m.last = &result
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Route: router.RouteHome} }
	case "p":
		return m, func() tea.Msg { return NavigateTo{Route: router.RoutePredict} }
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if user := m.session.User; user != nil {
		b.WriteString("Name   │ " + user.Name + "\n")
		b.WriteString("Email  │ " + user.Email + "\n")
		b.WriteString("Role   │ " + roleLabel(user.Role) + "\n")
		b.WriteString("Since  │ " + user.CreatedAt.Format("2006-01-02") + "\n")
	}

	b.WriteString("\n")
	if m.last != nil {
		b.WriteString(fmt.Sprintf("Last assessment: %s risk (score %d) on %s\n",
			m.last.RiskLevel, m.last.Score, m.last.Timestamp.Format("2006-01-02 15:04")))
	} else {
		b.WriteString("No assessment yet. Press p to take one.\n")
	}

	return renderPage("MY DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"p: new assessment │ esc: home")
}
