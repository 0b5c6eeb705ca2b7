package models

import "time"

// Role restricts which routes the router guard will render for a user.
// An empty role denotes a pre-role account that is allowed only on
// general authenticated routes.
type Role string

const (
	RoleNone            Role = ""
	RoleSeller          Role = "seller"
	RoleWasteManagement Role = "waste-management"
)

// User represents an account entity used for authentication and authorization.
// Accounts are append-only: they are created by signup and never updated or
// deleted afterwards.
type User struct {
	// UserID is the unique identifier assigned at creation time.
	// It is monotonic (current-time based) so identifiers never repeat
	// within one client.
	UserID int64 `json:"id"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Email is the login identifier. Unique across the user collection;
	// creation is rejected otherwise.
	Email string `json:"email"`

	// Password is stored and compared as an exact string. This mirrors the
	// client behavior contract of the source system; it is not a scheme to
	// copy into anything that talks to a network.
	Password string `json:"password"`

	// Role is the optional role tag. Empty for pre-role accounts.
	Role Role `json:"role,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
