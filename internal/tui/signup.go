package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

// signupRoles is the account-type selector order. Index 0 is a plain
// account with no role tag.
var signupRoles = []models.Role{models.RoleNone, models.RoleSeller, models.RoleWasteManagement}

// SignupModel is the Bubble Tea model for the signup page: four text inputs
// (name, email, password, confirmation) plus an account-type selector. Both
// password fields travel to the service unchecked; the mismatch verdict
// belongs there, ahead of any persistence.
type SignupModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	roleIdx    int
	focus      int
	submitting bool
	errMsg     string
}

// NewSignupModel creates a [SignupModel] with pre-configured inputs.
// The name field receives focus immediately; both password fields use
// masked echo.
func NewSignupModel(ctx context.Context, auth service.AuthService) *SignupModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "full name"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 64
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "confirm password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	return &SignupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model].
func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authResultMsg] — clears submitting state; on success [RootModel] has
//     already navigated away, so the form resets for the next visit.
//   - esc             — switches back to the login page.
//   - tab / shift+tab — moves focus across inputs and the role selector.
//   - left / right    — cycles the account type when the selector has focus.
//   - enter           — validates and dispatches the async signup command.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if result.err == nil {
			m.resetForm()
		}
		return m, nil
	case sessionNotice:
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Route: router.RouteLogin} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "left", "right":
			if m.focus == len(m.inputs) {
				m.cycleRole(keyMsg.String() == "right")
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			pass := m.inputs[2].Value()
			confirm := m.inputs[3].Value()

			if name == "" || email == "" || pass == "" {
				m.errMsg = "Name, email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(name, email, pass, confirm, signupRoles[m.roleIdx])
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements [tea.Model].
func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("Full Name        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Confirm Password │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")
	b.WriteString("Account Type     │ ")
	if m.focus == len(m.inputs) {
		b.WriteString("< " + roleLabel(signupRoles[m.roleIdx]) + " >")
	} else {
		b.WriteString("  " + roleLabel(signupRoles[m.roleIdx]))
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating Account...]\n")
	} else {
		b.WriteString("\n[Create Account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("JOIN E-SAWCTHA", strings.TrimRight(b.String(), "\n"),
		"enter: create account │ tab: next field │ ←/→: account type │ esc: sign in")
}

func (m *SignupModel) cmdSignup(name, email, pass, confirm string, role models.Role) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Signup(ctx, service.SignupProfile{
			Name:            name,
			Email:           email,
			Password:        pass,
			ConfirmPassword: confirm,
			Role:            role,
		})
		return authResultMsg{
			session: session,
			err:     err,
			signup:  true,
		}
	}
}

func roleLabel(role models.Role) string {
	switch role {
	case models.RoleSeller:
		return "Seller"
	case models.RoleWasteManagement:
		return "Waste Management"
	default:
		return "Standard"
	}
}

func (m *SignupModel) cycleRole(forward bool) {
	if forward {
		m.roleIdx = (m.roleIdx + 1) % len(signupRoles)
	} else {
		m.roleIdx = (m.roleIdx - 1 + len(signupRoles)) % len(signupRoles)
	}
}

func (m *SignupModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.roleIdx = 0
	m.errMsg = ""
	m.inputs[m.focus].Focus()
}

// focusNext cycles focus over the four inputs plus the role selector.
func (m *SignupModel) focusNext() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *SignupModel) focusPrev() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}
