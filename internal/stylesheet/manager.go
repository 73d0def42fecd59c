// SPDX-License-Identifier: MIT
package stylesheet

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

// ErrNilSink is returned by NewManager when no sink is given
var ErrNilSink = errors.New("stylesheet sink is nil")

// Manager sets and clears the light and dark theme stylesheets
type Manager struct {
	sink  Sink
	steps themes.StepConfig
}

// NewManager creates a manager writing to sink. steps is used whenever a
// call does not pass its own; nil means the default steps.
func NewManager(sink Sink, steps themes.StepConfig) (*Manager, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	return &Manager{sink: sink, steps: steps}, nil
}

// SetTheme renders options and replaces the mode's stylesheet. Nothing is
// written if any entry is invalid.
func (m *Manager) SetTheme(options themes.ThemeOptions, mode themes.Mode, steps themes.StepConfig) error {
	if len(steps) == 0 {
		steps = m.steps
	}

	css, err := themes.GenerateCSS(options, mode, steps)
	if err != nil {
		return fmt.Errorf("failed to generate %s theme: %w", mode, err)
	}

	id := mode.StylesheetID()
	if err := m.sink.Replace(id, css); err != nil {
		return fmt.Errorf("failed to set %s: %w", id, err)
	}

	log.Debug("theme set", "id", id, "selectors", len(options))
	return nil
}

// ClearTheme removes the mode's stylesheet if present
func (m *Manager) ClearTheme(mode themes.Mode) error {
	id := mode.StylesheetID()
	if err := m.sink.Remove(id); err != nil {
		return fmt.Errorf("failed to clear %s: %w", id, err)
	}

	log.Debug("theme cleared", "id", id)
	return nil
}

// SetLightTheme sets the easy-theme stylesheet
func (m *Manager) SetLightTheme(options themes.ThemeOptions, steps themes.StepConfig) error {
	return m.SetTheme(options, themes.Light, steps)
}

// SetDarkTheme sets the easy-theme-dark stylesheet
func (m *Manager) SetDarkTheme(options themes.ThemeOptions, steps themes.StepConfig) error {
	return m.SetTheme(options, themes.Dark, steps)
}

// ClearLightTheme removes the easy-theme stylesheet
func (m *Manager) ClearLightTheme() error {
	return m.ClearTheme(themes.Light)
}

// ClearDarkTheme removes the easy-theme-dark stylesheet
func (m *Manager) ClearDarkTheme() error {
	return m.ClearTheme(themes.Dark)
}
