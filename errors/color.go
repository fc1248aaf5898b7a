package errors

import "github.com/fatih/color"

// colorize applies a severity-appropriate ANSI color to label, the way
// aiseeq/glint colors its own lint-diagnostic stream with the same
// package. This is purely a rendering concern layered on top of List;
// nothing else in this package depends on color being enabled.
func colorize(sev Severity, label string) string {
	switch sev {
	case Fatal:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case Error:
		return color.New(color.FgRed).Sprint(label)
	case Warning:
		return color.New(color.FgYellow).Sprint(label)
	default:
		return label
	}
}
