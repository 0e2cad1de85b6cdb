package models

// Role values as stored by the backend and in the local session store.
const (
	RoleCoordinator = "Coordenador"
	RoleProfessor   = "Professor"
)

// Theme preference values. When no value is stored the client falls back to
// the system-reported preference.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Session is the identity persisted across restarts after a successful login.
type Session struct {
	User      string
	UserType  string
	FirstName string
}

// LoggedIn reports whether the session carries an identity.
func (s Session) LoggedIn() bool {
	return s.User != ""
}

// IsCoordinator reports whether the session role unlocks the room edit and
// delete surfaces. This is a presentational gate only; the server enforces
// the real authorization.
func (s Session) IsCoordinator() bool {
	return s.UserType == RoleCoordinator
}
