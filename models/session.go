package models

// Session is the in-memory, persisted representation of the currently
// authenticated identity in one client. A nil User means unauthenticated.
// The session always holds a full value copy of exactly one user, mirroring
// the persisted current-user record.
type Session struct {
	User *User
}

// Authenticated reports whether the session holds a user.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// Role returns the role of the session's user, or RoleNone when
// unauthenticated or the account carries no role tag.
func (s Session) Role() Role {
	if s.User == nil {
		return RoleNone
	}
	return s.User.Role
}
