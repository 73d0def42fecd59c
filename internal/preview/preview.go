// SPDX-License-Identifier: MIT
// Package preview renders theme rules as terminal color swatches.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thatcatcamp/easytheme/internal/color"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	nameStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	valueStyle = lipgloss.NewStyle().
			Faint(true).
			Width(swatchWidth).
			Padding(0, 1)
)

// wide enough for "255, 255, 255" plus padding
const swatchWidth = 16

// Swatch renders a hex color as a block of that color with readable text
func Swatch(hex string) string {
	bg := "#" + strings.TrimPrefix(hex, "#")
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(color.ContrastFor(bg))).
		Width(swatchWidth).
		Padding(0, 1).
		Render(hex)
}

// Render renders one line per rule under a title. Color values get a
// swatch, anything else (the -rgb triples) is printed as is.
func Render(title string, rules []themes.Rule) string {
	lines := make([]string, 0, len(rules))
	for _, rule := range rules {
		var value string
		if _, ok := color.HexToRGB(rule.Value); ok {
			value = Swatch(rule.Value)
		} else {
			value = valueStyle.Render(rule.Value)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, value, nameStyle.Render(rule.Name)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), strings.Join(lines, "\n"))
}

// PaletteRow renders a palette as its two swatches followed by its name
func PaletteRow(p *themes.Palette) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, Swatch(p.Primary), Swatch(p.Secondary), nameStyle.Render(p.Name))
}
