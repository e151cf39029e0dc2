// Package pretty renders human-readable output: colored text based on a
// small markup syntax, boxed sections, and error messages. All of it goes
// to the operator's terminal, never into machine-readable output.
package pretty

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
)

var colorsEnabled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

// DisableColors turns all markup into plain text. Colors are also disabled
// automatically when stderr is not a terminal.
func DisableColors() {
	colorsEnabled = false
}

var ansiCodes = map[string]string{
	"reset":   "0",
	"bold":    "1",
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"blue":    "34",
	"magenta": "35",
	"cyan":    "36",
	"white":   "37",
}

var tagPattern = regexp.MustCompile(`\[[a-z]+\]`)

// Color renders markup tags like [bold], [green], [reset] into ANSI escape
// sequences, and appends a final reset. Unknown tags are left as-is. When
// colors are disabled, known tags are stripped instead.
func Color(s string) string {
	replaced := false

	out := tagPattern.ReplaceAllStringFunc(s, func(tag string) string {
		code, known := ansiCodes[strings.Trim(tag, "[]")]
		if !known {
			return tag
		}
		replaced = true
		if !colorsEnabled {
			return ""
		}
		return "\x1b[" + code + "m"
	})

	if replaced && colorsEnabled && !strings.HasSuffix(out, "\x1b[0m") {
		out += "\x1b[0m"
	}

	return out
}

// Colorf formats like fmt.Sprintf, then renders markup like Color.
func Colorf(format string, args ...any) string {
	return Color(fmt.Sprintf(format, args...))
}

// Error renders an error for display at the end of a run.
func Error(err error) string {
	return Colorf("[red][bold]Error:[reset] %s", err)
}

// StyledNumTargets renders a count of target addresses, with correct
// pluralization.
func StyledNumTargets(n int) string {
	if n == 1 {
		return Color("[bold]1 target")
	}
	return Colorf("[bold]%d targets", n)
}
