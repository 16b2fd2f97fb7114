// Package models defines the client-side data models of GophDiary:
// identities, journal entries, calendar dates and derived calendar cells.
package models

// Identity is a username/password pair from the static roster.
// Passwords are compared in plain text; there is no security model.
type Identity struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Entry is one immutable dated journal note owned by exactly one Identity.
type Entry struct {
	ID      string `json:"id"`
	Date    Date   `json:"date"`
	Content string `json:"content"`
}

// Theme is the UI color scheme persisted independently of the session.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps anything other than "dark" to ThemeLight.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
