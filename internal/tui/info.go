package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/router"
)

type infoField struct {
	name        string
	description string
}

type infoCategory struct {
	category string
	fields   []infoField
}

// Accordion content explaining every assessment input. Static reference
// material, grouped the way the form groups its fields.
var infoCategories = []infoCategory{
	{
		category: "Basic Information",
		fields: []infoField{
			{"Age", "Your age in years. Heart disease risk increases with age, especially after 45 for men and 55 for women."},
			{"Sex", "Your biological sex. Men typically have higher risk at younger ages, while women's risk increases after menopause."},
			{"BMI (Body Mass Index)", "Calculated as weight in kg divided by height in meters squared. BMI over 25 indicates overweight, over 30 indicates obesity."},
		},
	},
	{
		category: "Vital Signs",
		fields: []infoField{
			{"Systolic Blood Pressure", "The pressure in your arteries when your heart beats. Normal is less than 120 mmHg. High blood pressure is a major risk factor."},
			{"Diastolic Blood Pressure", "The pressure in your arteries when your heart rests between beats. Normal is less than 80 mmHg."},
			{"Heart Rate", "Your resting heart rate in beats per minute. Normal range is 60-100 bpm. Very high or low rates may indicate problems."},
		},
	},
	{
		category: "Lab Results",
		fields: []infoField{
			{"Cholesterol", "Total cholesterol level in mg/dL. High cholesterol (over 240) significantly increases heart disease risk."},
		},
	},
	{
		category: "Medical History",
		fields: []infoField{
			{"Diabetes", "Having diabetes significantly increases heart disease risk due to blood vessel damage from high blood sugar."},
			{"Family History", "Having close relatives with heart disease increases your genetic risk, especially if they had early heart disease."},
			{"Previous Heart Problems", "Any history of heart attack, angina, heart surgery, or other cardiovascular issues greatly increases future risk."},
		},
	},
	{
		category: "Lifestyle Factors",
		fields: []infoField{
			{"Smoking", "Smoking damages blood vessels and significantly increases heart disease risk. Even secondhand smoke is harmful."},
			{"Exercise Hours per Week", "Regular physical activity strengthens the heart and reduces risk. Aim for at least 150 minutes of moderate exercise weekly."},
			{"Healthy Diet", "A diet rich in fruits, vegetables, whole grains, and lean proteins while limiting saturated fat and sodium."},
			{"Stress Level", "Chronic stress can contribute to heart disease through various mechanisms including high blood pressure."},
			{"Sleep Hours", "Poor sleep (less than 6 hours or more than 9 hours) is associated with increased heart disease risk."},
		},
	},
}

// InfoModel explains the assessment inputs. Purely informational: one
// category is expanded at a time, like an accordion.
type InfoModel struct {
	selected int
}

// NewInfoModel creates the field-descriptions page.
func NewInfoModel() *InfoModel {
	return &InfoModel{}
}

// Init implements [tea.Model].
func (m *InfoModel) Init() tea.Cmd {
	return nil
}

func (m *InfoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Route: router.RouteHome} }
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(infoCategories)-1 {
			m.selected++
		}
	}
	return m, nil
}

func (m *InfoModel) View() string {
	var b strings.Builder
	b.WriteString("Understanding the health information used to assess your risk.\n\n")

	for i, cat := range infoCategories {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		b.WriteString(cursor + cat.category + "\n")
		if i != m.selected {
			continue
		}
		for _, field := range cat.fields {
			b.WriteString("     " + field.name + "\n")
			b.WriteString("       " + field.description + "\n")
		}
	}

	return renderPage("HEALTH FIELD DESCRIPTIONS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: browse categories │ esc: home")
}
