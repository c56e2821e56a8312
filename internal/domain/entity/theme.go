package entity

// Theme preferencia visual persistida por dispositivo.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme tema inicial cuando no hay preferencia guardada.
const DefaultTheme = ThemeLight

// ParseTheme acepta solo "light" o "dark".
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

// Toggle alterna entre claro y oscuro.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
