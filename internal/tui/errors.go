package tui

import (
	"errors"

	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

// authErrorToast maps an auth failure to its notification. Unknown email and
// wrong password share one message on purpose: the toast must not reveal
// which of the two failed.
func authErrorToast(m authResultMsg) models.Toast {
	switch {
	case errors.Is(m.err, service.ErrInvalidCredentials):
		return models.Toast{
			Title:       "Login Failed",
			Description: "User does not exist or invalid credentials. Please sign up first.",
			Variant:     models.ToastDestructive,
		}
	case errors.Is(m.err, service.ErrPasswordMismatch):
		return models.Toast{
			Title:       "Password Mismatch",
			Description: "Passwords do not match. Please try again.",
			Variant:     models.ToastDestructive,
		}
	case errors.Is(m.err, service.ErrDuplicateAccount):
		return models.Toast{
			Title:       "Account Exists",
			Description: "An account with this email already exists. Please sign in.",
			Variant:     models.ToastDestructive,
		}
	default:
		return models.Toast{
			Title:       "Something Went Wrong",
			Description: m.err.Error(),
			Variant:     models.ToastDestructive,
		}
	}
}
