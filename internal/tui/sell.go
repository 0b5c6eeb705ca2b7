package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

const (
	sellFieldTitle = iota
	sellFieldPrice
	sellFieldDescription
	sellFieldLocation
	sellFieldPhone
	sellFieldCategory
	sellFieldCondition
	sellFieldCount
)

// SellModel is the seller-only page for listing an item. Five text inputs
// plus cycling selectors for category and condition; submission is disabled
// while a prior submission is pending.
type SellModel struct {
	ctx      context.Context
	listings service.ListingService

	inputs       []textinput.Model
	categoryIdx  int
	conditionIdx int
	focus        int
	submitting   bool
	errMsg       string
}

// NewSellModel creates the sell-item page.
func NewSellModel(ctx context.Context, listings service.ListingService) *SellModel {
	placeholders := []string{"title", "price", "description", "location", "contact phone"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = p
		inputs[i].Width = 40
	}
	inputs[sellFieldTitle].Focus()
	inputs[sellFieldPrice].CharLimit = 12

	return &SellModel{
		ctx:      ctx,
		listings: listings,
		inputs:   inputs,
	}
}

// Init implements [tea.Model].
func (m *SellModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. On a successful save the form resets, a
// success toast fires, and the page navigates to the marketplace with the
// fresh listing's detail view already open.
func (m *SellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case listingSavedMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = "Could not list the item. Check the form and try again."
			return m, nil
		}

		m.resetForm()
		saved := result.listing
		return m, tea.Batch(
			func() tea.Msg {
				return toastMsg{toast: models.Toast{
					Title:       "Item Listed Successfully!",
					Description: "Your item has been added to the marketplace.",
				}}
			},
			func() tea.Msg {
				return NavigateTo{Route: router.RouteListings, Payload: listingOpenedMsg{listing: saved}}
			},
		)
	case sessionNotice:
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Route: router.RouteHome} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "left", "right":
			forward := keyMsg.String() == "right"
			switch m.focus {
			case sellFieldCategory:
				m.categoryIdx = cycle(m.categoryIdx, len(models.Categories()), forward)
				return m, nil
			case sellFieldCondition:
				m.conditionIdx = cycle(m.conditionIdx, len(models.Conditions()), forward)
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m, m.submit()
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
func (m *SellModel) View() string {
	labels := []string{"Title      ", "Price      ", "Description", "Location   ", "Phone      "}

	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	b.WriteString("Category    │ " + selectorCell(string(models.Categories()[m.categoryIdx]), m.focus == sellFieldCategory) + "\n")
	b.WriteString("Condition   │ " + selectorCell(string(models.Conditions()[m.conditionIdx]), m.focus == sellFieldCondition) + "\n")

	if m.submitting {
		b.WriteString("\n[Listing Item...]\n")
	} else {
		b.WriteString("\n[List Item]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("SELL AN ITEM", strings.TrimRight(b.String(), "\n"),
		"enter: list item │ tab: next field │ ←/→: change selection │ esc: home")
}

func (m *SellModel) submit() tea.Cmd {
	title := strings.TrimSpace(m.inputs[sellFieldTitle].Value())
	priceRaw := strings.TrimSpace(m.inputs[sellFieldPrice].Value())

	price, err := strconv.ParseFloat(priceRaw, 64)
	if title == "" || priceRaw == "" || err != nil || price < 0 {
		m.errMsg = "A title and a non-negative price are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	listing := models.Listing{
		Title:       title,
		Price:       price,
		Description: strings.TrimSpace(m.inputs[sellFieldDescription].Value()),
		Category:    models.Categories()[m.categoryIdx],
		Condition:   models.Conditions()[m.conditionIdx],
		Location:    strings.TrimSpace(m.inputs[sellFieldLocation].Value()),
		Phone:       strings.TrimSpace(m.inputs[sellFieldPhone].Value()),
	}

	ctx := m.ctx
	listings := m.listings
	return func() tea.Msg {
		created, err := listings.Create(ctx, listing)
		return listingSavedMsg{listing: created, err: err}
	}
}

func (m *SellModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = sellFieldTitle
	m.categoryIdx = 0
	m.conditionIdx = 0
	m.errMsg = ""
	m.inputs[m.focus].Focus()
}

func (m *SellModel) focusNext() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + 1) % sellFieldCount
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *SellModel) focusPrev() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus - 1 + sellFieldCount) % sellFieldCount
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func cycle(idx, length int, forward bool) int {
	if forward {
		return (idx + 1) % length
	}
	return (idx - 1 + length) % length
}

func selectorCell(value string, focused bool) string {
	if focused {
		return "< " + value + " >"
	}
	return "  " + value
}
