package command

import "strings"

// Normalize trims surrounding whitespace and lowercases line so that commands
// match case-insensitively.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}
