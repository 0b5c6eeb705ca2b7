package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

type predictFieldKind int

const (
	predictFieldText predictFieldKind = iota
	predictFieldSex
	predictFieldToggle
)

type predictField struct {
	label string
	kind  predictFieldKind
	// index into inputs for text fields, into toggles for toggle fields
	idx int
}

// PredictModel is the heart-disease risk assessment form. Vitals are free
// numeric inputs, risk factors are yes/no toggles. Submission scores the
// form, persists the result, and lands on the results page.
type PredictModel struct {
	ctx         context.Context
	assessments service.AssessmentService

	fields  []predictField
	inputs  []textinput.Model
	toggles []bool
	sexIdx  int

	focus      int
	submitting bool
	errMsg     string
}

var predictSexOptions = []string{"Male", "Female"}

// NewPredictModel creates the assessment form page.
func NewPredictModel(ctx context.Context, assessments service.AssessmentService) *PredictModel {
	texts := []string{
		"Age",
		"Cholesterol (mg/dL)",
		"Systolic BP (mmHg)",
		"Diastolic BP (mmHg)",
		"Heart Rate (bpm)",
		"BMI",
		"Exercise Hours / Week",
		"Physical Activity Days",
		"Sleep Hours / Day",
	}
	toggleLabels := []string{
		"Diabetes",
		"Family History",
		"Smoking",
		"Obesity",
		"Previous Heart Problems",
		"High Stress Level",
		"Healthy Diet",
	}

	inputs := make([]textinput.Model, len(texts))
	for i := range texts {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = "0"
		inputs[i].Width = 10
		inputs[i].CharLimit = 8
	}
	inputs[0].Focus()

	fields := make([]predictField, 0, len(texts)+len(toggleLabels)+1)
	fields = append(fields, predictField{label: texts[0], kind: predictFieldText, idx: 0})
	fields = append(fields, predictField{label: "Sex", kind: predictFieldSex})
	for i := 1; i < len(texts); i++ {
		fields = append(fields, predictField{label: texts[i], kind: predictFieldText, idx: i})
	}
	for i, label := range toggleLabels {
		fields = append(fields, predictField{label: label, kind: predictFieldToggle, idx: i})
	}

	return &PredictModel{
		ctx:         ctx,
		assessments: assessments,
		fields:      fields,
		inputs:      inputs,
		toggles:     make([]bool, len(toggleLabels)),
	}
}

// Init implements [tea.Model].
func (m *PredictModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *PredictModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case sessionNotice:
		return m, nil
	case assessmentDoneMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = "Could not complete the assessment. Try again."
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Route: router.RouteResults} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			return m, func() tea.Msg { return NavigateTo{Route: router.RouteDashboard} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.fields))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
			return m, nil
		case "left", "right", " ":
			field := m.fields[m.focus]
			switch field.kind {
			case predictFieldSex:
				m.sexIdx = (m.sexIdx + 1) % len(predictSexOptions)
				return m, nil
			case predictFieldToggle:
				m.toggles[field.idx] = !m.toggles[field.idx]
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m, m.submit()
		}
	}

	if field := m.fields[m.focus]; field.kind == predictFieldText {
		var cmd tea.Cmd
		m.inputs[field.idx], cmd = m.inputs[field.idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *PredictModel) setFocus(focus int) {
	if old := m.fields[m.focus]; old.kind == predictFieldText {
		m.inputs[old.idx].Blur()
	}
	m.focus = focus
	if next := m.fields[m.focus]; next.kind == predictFieldText {
		m.inputs[next.idx].Focus()
	}
}

func (m *PredictModel) submit() tea.Cmd {
	values := make([]float64, len(m.inputs))
	for i := range m.inputs {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			m.errMsg = fmt.Sprintf("%q is not a valid number", raw)
			return nil
		}
		values[i] = v
	}
	if values[0] <= 0 {
		m.errMsg = "Age is required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	input := models.AssessmentInput{
		Age:                   int(values[0]),
		Sex:                   predictSexOptions[m.sexIdx],
		Cholesterol:           int(values[1]),
		SystolicBP:            int(values[2]),
		DiastolicBP:           int(values[3]),
		HeartRate:             int(values[4]),
		BMI:                   values[5],
		ExerciseHoursPerWeek:  values[6],
		PhysicalActivityDays:  values[7],
		SleepHours:            values[8],
		Diabetes:              m.toggles[0],
		FamilyHistory:         m.toggles[1],
		Smoking:               m.toggles[2],
		Obesity:               m.toggles[3],
		PreviousHeartProblems: m.toggles[4],
		HighStress:            m.toggles[5],
		HealthyDiet:           m.toggles[6],
	}

	ctx := m.ctx
	assessments := m.assessments
	return func() tea.Msg {
		result, err := assessments.Submit(ctx, input)
		return assessmentDoneMsg{result: result, err: err}
	}
}

// View implements [tea.Model].
func (m *PredictModel) View() string {
	var b strings.Builder
	for i, field := range m.fields {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-24s│ ", cursor, field.label))
		switch field.kind {
		case predictFieldText:
			b.WriteString("[" + m.inputs[field.idx].View() + "]")
		case predictFieldSex:
			b.WriteString(selectorCell(predictSexOptions[m.sexIdx], i == m.focus))
		case predictFieldToggle:
			b.WriteString(selectorCell(yesNo(m.toggles[field.idx]), i == m.focus))
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Analyzing...]\n")
	} else {
		b.WriteString("\n[Predict Risk]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("HEART DISEASE RISK ASSESSMENT", strings.TrimRight(b.String(), "\n"),
		"enter: predict │ tab/↑/↓: move │ space: toggle │ esc: dashboard")
}
