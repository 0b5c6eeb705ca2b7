package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/models"
)

// toastDuration is how long a notification overlay stays on screen.
const toastDuration = 3 * time.Second

// toastModel renders the notification overlay. It is fire-and-forget: pages
// emit a [toastMsg] and never consume a return value.
type toastModel struct {
	toast   models.Toast
	visible bool
	seq     int
}

func (t *toastModel) show(toast models.Toast) tea.Cmd {
	t.toast = toast
	t.visible = true
	t.seq++

	seq := t.seq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

func (t *toastModel) clear(msg clearToastMsg) {
	if msg.seq == t.seq {
		t.visible = false
	}
}

func (t *toastModel) View() string {
	if !t.visible {
		return ""
	}

	content := t.toast.Title
	if t.toast.Description != "" {
		content += "\n" + t.toast.Description
	}

	if t.toast.Variant == models.ToastDestructive {
		return destructiveBoxStyle.Render(content)
	}
	return informationalBoxStyle.Render(content)
}
