package smartctl

import "strings"

// SplitLines splits command output into lines without their line endings.
// Leading whitespace is kept since the parsers depend on it.
func SplitLines(output string) []string {
	if output == "" {
		return nil
	}

	lines := strings.Split(output, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
