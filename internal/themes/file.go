// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a theme definition loaded from YAML. Mapping order in the
// document is kept, so selectors and steps render in the order written.
//
//	steps: {lighter: 25, light: 15, dark: -15, darker: -25}
//	light:
//	  brand: ["#112233", "#ffffff", true]
//	dark:
//	  brand: ["#334455", "#ffffff", true]
type File struct {
	Steps StepConfig   `yaml:"steps"`
	Light ThemeOptions `yaml:"light"`
	Dark  ThemeOptions `yaml:"dark"`
}

// Options returns the entries for the given mode
func (f *File) Options(mode Mode) ThemeOptions {
	if mode == Dark {
		return f.Dark
	}
	return f.Light
}

// LoadFile reads and parses a theme file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseFile parses theme YAML
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return &f, nil
}

// UnmarshalYAML decodes a name: delta mapping in document order
func (s *StepConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: steps must be a mapping", value.Line)
	}

	steps := make(StepConfig, 0, len(value.Content)/2)
	seen := make(map[string]bool, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if seen[key.Value] {
			return fmt.Errorf("line %d: duplicate step %q", key.Line, key.Value)
		}
		seen[key.Value] = true

		var delta float64
		if err := val.Decode(&delta); err != nil {
			return fmt.Errorf("line %d: step %q: %w", val.Line, key.Value, err)
		}
		steps = append(steps, Step{Name: key.Value, Delta: delta})
	}

	*s = steps
	return nil
}

// UnmarshalYAML decodes a selector: [primary, contrast, extras?] mapping in
// document order
func (o *ThemeOptions) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: theme options must be a mapping", value.Line)
	}

	opts := make(ThemeOptions, 0, len(value.Content)/2)
	seen := make(map[string]bool, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if seen[key.Value] {
			return fmt.Errorf("line %d: duplicate selector %q", key.Line, key.Value)
		}
		seen[key.Value] = true

		if val.Kind != yaml.SequenceNode || len(val.Content) < 2 || len(val.Content) > 3 {
			return fmt.Errorf("line %d: %q must be [primary, contrast] or [primary, contrast, extras]", val.Line, key.Value)
		}

		var spec ColorSpec
		if err := val.Content[0].Decode(&spec.Primary); err != nil {
			return fmt.Errorf("line %d: %q primary: %w", val.Line, key.Value, err)
		}
		if err := val.Content[1].Decode(&spec.Contrast); err != nil {
			return fmt.Errorf("line %d: %q contrast: %w", val.Line, key.Value, err)
		}
		if len(val.Content) == 3 {
			if err := val.Content[2].Decode(&spec.Extras); err != nil {
				return fmt.Errorf("line %d: %q extras: %w", val.Line, key.Value, err)
			}
		}

		opts = append(opts, Entry{Selector: key.Value, Spec: spec})
	}

	*o = opts
	return nil
}
