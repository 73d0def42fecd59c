// SPDX-License-Identifier: MIT

// Package themes expands primary/contrast color pairs into CSS custom
// property rules and renders them as stylesheet text.
package themes

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/easytheme/internal/color"
)

// ColorSpec is the primary/contrast pair for one selector
type ColorSpec struct {
	Primary  string
	Contrast string
	Extras   bool // also emit brightness variants of Primary
}

// Step is a named lightness delta in percentage points
type Step struct {
	Name  string
	Delta float64
}

// StepConfig is an ordered list of steps. Rules are emitted in slice order.
type StepConfig []Step

// DefaultSteps returns a fresh copy of the default step table
func DefaultSteps() StepConfig {
	return StepConfig{
		{Name: "lighter", Delta: 25},
		{Name: "light", Delta: 15},
		{Name: "dark", Delta: -15},
		{Name: "darker", Delta: -25},
	}
}

// Entry binds a selector name to its colors
type Entry struct {
	Selector string
	Spec     ColorSpec
}

// ThemeOptions is an ordered list of entries, rendered in insertion order
type ThemeOptions []Entry

// Add appends an entry and returns the options for chaining
func (o ThemeOptions) Add(selector, primary, contrast string, extras bool) ThemeOptions {
	return append(o, Entry{
		Selector: selector,
		Spec:     ColorSpec{Primary: primary, Contrast: contrast, Extras: extras},
	})
}

// Rule is a single CSS variable assignment
type Rule struct {
	Name  string
	Value string
}

func (r Rule) String() string {
	return r.Name + ":" + r.Value + ";"
}

// Mode selects the light or dark stylesheet
type Mode int

const (
	Light Mode = iota
	Dark
)

// StylesheetID returns the element id the mode's stylesheet is stored under
func (m Mode) StylesheetID() string {
	if m == Dark {
		return "easy-theme-dark"
	}
	return "easy-theme"
}

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode accepts "light" or "dark"
func ParseMode(s string) (Mode, error) {
	switch s {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme mode %q (want light or dark)", s)
	}
}

// ThemeColor builds the rules for one selector. The four base rules come
// first, followed by one rule per step when extras is set. An empty steps
// list means DefaultSteps.
func ThemeColor(selector, primary, contrast string, extras bool, steps StepConfig) ([]Rule, error) {
	primaryRGB, err := color.ParseHex(primary)
	if err != nil {
		return nil, fmt.Errorf("theme %q primary: %w", selector, err)
	}
	contrastRGB, err := color.ParseHex(contrast)
	if err != nil {
		return nil, fmt.Errorf("theme %q contrast: %w", selector, err)
	}
	if len(steps) == 0 {
		steps = DefaultSteps()
	}

	prefix := "--theme-" + selector
	rules := make([]Rule, 0, 4+len(steps))
	rules = append(rules,
		Rule{Name: prefix, Value: primary},
		Rule{Name: prefix + "-contrast", Value: contrast},
		Rule{Name: prefix + "-rgb", Value: primaryRGB.String()},
		Rule{Name: prefix + "-contrast-rgb", Value: contrastRGB.String()},
	)

	if extras {
		// HexToHSL needs the leading #
		base := "#" + strings.TrimPrefix(primary, "#")
		for _, step := range steps {
			rules = append(rules, Rule{
				Name:  prefix + "-" + step.Name,
				Value: color.ChangeBrightness(base, step.Delta),
			})
		}
	}

	return rules, nil
}

// Rules builds the rules for every entry in order
func (o ThemeOptions) Rules(steps StepConfig) ([]Rule, error) {
	var all []Rule
	for _, e := range o {
		rules, err := ThemeColor(e.Selector, e.Spec.Primary, e.Spec.Contrast, e.Spec.Extras, steps)
		if err != nil {
			return nil, err
		}
		all = append(all, rules...)
	}
	return all, nil
}
