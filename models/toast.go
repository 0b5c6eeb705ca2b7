package models

// ToastVariant selects the visual treatment of a notification.
type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// Toast is the fire-and-forget notification payload surfaced to the user.
// No return value is consumed by callers.
type Toast struct {
	Title       string
	Description string
	Variant     ToastVariant
}
