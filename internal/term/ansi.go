// Package term provides ANSI styling for the dice roller's console output.
package term

// ANSI escape codes used by the console.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// Styler applies console styles when Enabled and returns text unchanged otherwise.
type Styler struct {
	Enabled bool
}

func (s Styler) apply(color, text string) string {
	if !s.Enabled || text == "" {
		return text
	}
	return Colorize(color, text)
}

// Heading styles a dice-group header.
func (s Styler) Heading(text string) string { return s.apply(Bold+Cyan, text) }

// Total styles the total line.
func (s Styler) Total(text string) string { return s.apply(Bold+Green, text) }

// Constant styles the constant line.
func (s Styler) Constant(text string) string { return s.apply(Yellow, text) }

// Warning styles notices about input that could not be used.
func (s Styler) Warning(text string) string { return s.apply(Red, text) }
