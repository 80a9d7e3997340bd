package enum

import "strconv"

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is the dark one.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Preference returns the stored form of the theme, "true" for dark and "false" for light.
func (t Theme) Preference() string {
	return strconv.FormatBool(t.IsDark())
}

// ThemeFromDark maps a dark flag to the theme.
func ThemeFromDark(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeFromPreference maps a stored preference to the theme.
// Only the exact "true" sentinel selects dark, everything else is light.
func ThemeFromPreference(v string) Theme {
	return ThemeFromDark(v == "true")
}
