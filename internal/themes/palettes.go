// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"

	"github.com/thatcatcamp/easytheme/internal/color"
)

// ErrUnknownPalette is returned when a palette name is not registered
var ErrUnknownPalette = errors.New("unknown palette")

// Palette defines the base colors for a theme
type Palette struct {
	Name      string `json:"name"`      // "slate", "indigo", etc.
	Primary   string `json:"primary"`   // hex color #RRGGBB
	Secondary string `json:"secondary"` // hex color #RRGGBB
}

var paletteOrder = []string{
	"slate", "indigo", "rose", "emerald", "navy", "purple",
	"teal", "amber", "rose-mono", "green-mono", "blue-mono", "neutral",
}

var palettes = map[string]Palette{
	"slate":      {Name: "slate", Primary: "#64748b", Secondary: "#0f172a"},
	"indigo":     {Name: "indigo", Primary: "#4f46e5", Secondary: "#f97316"},
	"rose":       {Name: "rose", Primary: "#e11d48", Secondary: "#64748b"},
	"emerald":    {Name: "emerald", Primary: "#059669", Secondary: "#f59e0b"},
	"navy":       {Name: "navy", Primary: "#000080", Secondary: "#fbbf24"},
	"purple":     {Name: "purple", Primary: "#a855f7", Secondary: "#ec4899"},
	"teal":       {Name: "teal", Primary: "#14b8a6", Secondary: "#f87171"},
	"amber":      {Name: "amber", Primary: "#f59e0b", Secondary: "#6366f1"},
	"rose-mono":  {Name: "rose-mono", Primary: "#e11d48", Secondary: "#c41e3a"},
	"green-mono": {Name: "green-mono", Primary: "#22c55e", Secondary: "#16a34a"},
	"blue-mono":  {Name: "blue-mono", Primary: "#3b82f6", Secondary: "#1e40af"},
	"neutral":    {Name: "neutral", Primary: "#6b7280", Secondary: "#4b5563"},
}

// Status colors shared by every palette
const (
	ColorSuccess = "#22c55e"
	ColorError   = "#ef4444"
	ColorWarning = "#f59e0b"
)

// GetPalette returns a copy of the named palette, or nil if it does not exist
func GetPalette(name string) *Palette {
	p, ok := palettes[name]
	if !ok {
		return nil
	}
	return &p
}

// LookupPalette is GetPalette with an ErrUnknownPalette error
func LookupPalette(name string) (*Palette, error) {
	p := GetPalette(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	return p, nil
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	var list []*Palette
	for _, name := range paletteOrder {
		if p := GetPalette(name); p != nil {
			list = append(list, p)
		}
	}
	return list
}

// GenerateOptions expands a palette into theme options for light or dark mode.
// Dark mode lifts primary and secondary so they read on a dark background.
func GenerateOptions(p *Palette, mode Mode) ThemeOptions {
	primary, secondary := p.Primary, p.Secondary
	if mode == Dark {
		primary = color.ChangeBrightness(primary, 15)
		secondary = color.ChangeBrightness(secondary, 15)
	}

	var opts ThemeOptions
	return opts.
		Add("primary", primary, color.ContrastFor(primary), true).
		Add("secondary", secondary, color.ContrastFor(secondary), true).
		Add("success", ColorSuccess, color.ContrastFor(ColorSuccess), false).
		Add("error", ColorError, color.ContrastFor(ColorError), false).
		Add("warning", ColorWarning, color.ContrastFor(ColorWarning), false)
}
