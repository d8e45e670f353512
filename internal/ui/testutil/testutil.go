// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences so rendered output can be
// compared without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters and ignoring ANSI codes.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// Lines strips ANSI codes and splits output into lines.
func Lines(output string) []string {
	return strings.Split(StripANSI(output), "\n")
}

// LineIndex returns the index of the first line containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return LineIndex(output, substr) >= 0
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	if i := LineIndex(output, substr); i >= 0 {
		return Lines(output)[i]
	}
	return ""
}

// CountLines returns the number of non-blank lines in the output.
func CountLines(output string) int {
	count := 0
	for _, line := range Lines(output) {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
