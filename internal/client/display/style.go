// Package display holds the terminal styling used by the interactive client:
// color codes, the readline prompt and the colored hint cells.
package display

// ANSI escape codes
const (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Paint wraps text in a color and resets afterwards
func Paint(color, text string) string {
	return color + text + Reset
}

// StorageState colors the health report's storage field. Without storage the
// server still serves puzzles and guesses, so "disabled" is a warning rather
// than an error.
func StorageState(state string) string {
	switch state {
	case "ok":
		return Paint(Green, state)
	case "disabled":
		return Paint(Yellow, state)
	default:
		return Paint(Red, state)
	}
}

// Prompt returns the colored readline prompt
func Prompt(text string) string {
	return Yellow + text + Yellow + " > " + Reset
}
