// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
)

// GenerateCSS renders every entry's rules inside a :root block. Dark mode
// wraps the block in a prefers-color-scheme media query.
func GenerateCSS(options ThemeOptions, mode Mode, steps StepConfig) (string, error) {
	rules, err := options.Rules(steps)
	if err != nil {
		return "", err
	}

	indent := "\t"
	var sb strings.Builder
	if mode == Dark {
		sb.WriteString("@media (prefers-color-scheme: dark) {\n\t")
		indent = "\t\t"
	}
	sb.WriteString(":root {\n")

	for _, rule := range rules {
		sb.WriteString(indent)
		sb.WriteString(rule.String())
		sb.WriteString("\n")
	}

	if mode == Dark {
		sb.WriteString("\t}\n")
	}
	sb.WriteString("}")

	return sb.String(), nil
}
