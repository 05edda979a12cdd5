package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorFlamingo  lipgloss.Color = "#f2cdcd"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay2 lipgloss.Color = "#9399b2"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand   = colorMauve
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// Account card accents cycle through these in account order.
var accountAccents = []lipgloss.Color{colorTeal, colorBlue, colorGreen, colorMauve, colorPeach}

func accountAccent(i int) lipgloss.Color {
	if len(accountAccents) == 0 {
		return colorAccent
	}
	return accountAccents[i%len(accountAccents)]
}

// Category bar colors keyed by the canonical category set; anything unknown
// falls back to overlay grey.
var categoryColors = map[string]lipgloss.Color{
	"Income":               colorGreen,
	"Groceries":            colorTeal,
	"Food & Drinks":        colorPeach,
	"Car & Transportation": colorBlue,
	"Bills & Utilities":    colorMauve,
	"Entertainment":        colorPink,
	"Shopping":             colorFlamingo,
	"Health":               colorSapphire,
	"Transfers":            colorLavender,
}

func categoryColor(name string) lipgloss.Color {
	if c, ok := categoryColors[name]; ok {
		return c
	}
	return colorOverlay1
}
