package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

func TestToastModel_ShowAndClear(t *testing.T) {
	var tm toastModel

	cmd := tm.show(models.Toast{Title: "Saved"})
	assert.NotNil(t, cmd)
	assert.True(t, tm.visible)
	assert.Contains(t, tm.View(), "Saved")

	tm.clear(clearToastMsg{seq: tm.seq})
	assert.False(t, tm.visible)
	assert.Empty(t, tm.View())
}

func TestToastModel_StaleClearIsIgnored(t *testing.T) {
	var tm toastModel

	tm.show(models.Toast{Title: "first"})
	stale := tm.seq
	tm.show(models.Toast{Title: "second"})

	// The first toast's timer fires after the second toast replaced it; the
	// newer toast must stay on screen.
	tm.clear(clearToastMsg{seq: stale})
	assert.True(t, tm.visible)
	assert.Contains(t, tm.View(), "second")

	tm.clear(clearToastMsg{seq: tm.seq})
	assert.False(t, tm.visible)
}

func TestAuthErrorToast(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, "Login Failed"},
		{"password mismatch", service.ErrPasswordMismatch, "Password Mismatch"},
		{"duplicate account", service.ErrDuplicateAccount, "Account Exists"},
		{"unknown error", errors.New("disk on fire"), "Something Went Wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toast := authErrorToast(authResultMsg{err: tt.err})
			assert.Equal(t, tt.wantTitle, toast.Title)
			assert.Equal(t, models.ToastDestructive, toast.Variant)
		})
	}
}

func TestAuthErrorToast_DoesNotRevealFailedField(t *testing.T) {
	toast := authErrorToast(authResultMsg{err: service.ErrInvalidCredentials})
	assert.NotContains(t, toast.Description, "password is wrong")
	assert.NotContains(t, toast.Description, "email not found")
}
