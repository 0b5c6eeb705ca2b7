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

// ResultsModel shows the most recent assessment result. A freshly submitted
// assessment lands here; opening the page directly with no stored result
// shows the empty state instead of an error.
type ResultsModel struct {
	ctx         context.Context
	assessments service.AssessmentService

	result *models.AssessmentResult
}

// NewResultsModel creates the assessment results page.
func NewResultsModel(ctx context.Context, assessments service.AssessmentService) *ResultsModel {
	return &ResultsModel{ctx: ctx, assessments: assessments}
}

// Init reloads the stored result each time the page opens.
func (m *ResultsModel) Init() tea.Cmd {
	ctx := m.ctx
	assessments := m.assessments
	return func() tea.Msg {
		result, err := assessments.Last(ctx)
		return lastAssessmentMsg{result: result, err: err}
	}
}

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case sessionNotice:
		return m, nil
	case lastAssessmentMsg:
		if v.err != nil {
			m.result = nil
			return m, nil
		}
		result := v.result
		m.result = &result
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Route: router.RouteDashboard} }
	case "p":
		return m, func() tea.Msg { return NavigateTo{Route: router.RoutePredict} }
	case "i":
		return m, func() tea.Msg { return NavigateTo{Route: router.RouteInfo} }
	}

	return m, nil
}

func (m *ResultsModel) View() string {
	if m.result == nil {
		return renderPage("ASSESSMENT RESULTS",
			"No assessment on record yet. Press p to take one.",
			"p: new assessment │ esc: dashboard")
	}

	in := m.result.Inputs

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Risk Level │ %s\n", m.result.RiskLevel))
	b.WriteString(fmt.Sprintf("Score      │ %d\n", m.result.Score))
	b.WriteString(fmt.Sprintf("Assessed   │ %s\n", m.result.Timestamp.Format("2006-01-02 15:04")))
	b.WriteString("\n")
	b.WriteString(riskAdvice(m.result.RiskLevel) + "\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Age %d, %s │ Cholesterol %d mg/dL │ BP %d/%d mmHg │ Heart rate %d bpm\n",
		in.Age, in.Sex, in.Cholesterol, in.SystolicBP, in.DiastolicBP, in.HeartRate))
	b.WriteString(fmt.Sprintf("BMI %.1f │ Exercise %.1f h/week │ Active %.0f days/week │ Sleep %.1f h\n",
		in.BMI, in.ExerciseHoursPerWeek, in.PhysicalActivityDays, in.SleepHours))
	b.WriteString(fmt.Sprintf("Diabetes: %s │ Family history: %s │ Smoking: %s │ Obesity: %s\n",
		yesNo(in.Diabetes), yesNo(in.FamilyHistory), yesNo(in.Smoking), yesNo(in.Obesity)))
	b.WriteString(fmt.Sprintf("Previous heart problems: %s │ High stress: %s │ Healthy diet: %s\n",
		yesNo(in.PreviousHeartProblems), yesNo(in.HighStress), yesNo(in.HealthyDiet)))

	return renderPage("ASSESSMENT RESULTS", strings.TrimRight(b.String(), "\n"),
		"p: new assessment │ i: about the inputs │ esc: dashboard")
}

func riskAdvice(level models.RiskLevel) string {
	switch level {
	case models.RiskHigh:
		return "Your risk factors suggest a high likelihood of heart disease. Please consult a doctor."
	case models.RiskModerate:
		return "Some risk factors stand out. A checkup and lifestyle changes are recommended."
	default:
		return "Your risk factors look good. Keep up the healthy habits."
	}
}
