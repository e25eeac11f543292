package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme forces the dark variant and applies the configured text size.
type CustomTheme struct {
	fyne.Theme
	textSize float32
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme(textSize float32) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), textSize: textSize}
}

// Color always resolves against the dark variant.
func (t *CustomTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, theme.VariantDark)
}

// Size returns the configured text size and the defaults for the rest.
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.textSize > 0 {
		return t.textSize
	}
	return t.Theme.Size(name)
}
