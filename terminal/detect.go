package terminal

import (
	"os"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base"
	"golang.org/x/term"
)

// minColors is the smallest palette that can show the Color set
const minColors = 8

// DetectColorSupport decides whether output to fd should carry color.
// ChoiceAlways and ChoiceNever are final; ChoiceAuto consults the
// environment and the terminal attached to fd.
func DetectColorSupport(choice ColorChoice, fd int) bool {
	switch choice {
	case ChoiceAlways:
		return true
	case ChoiceNever:
		return false
	}

	// https://no-color.org: any non-empty value disables color
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if fd < 0 || !term.IsTerminal(fd) {
		return false
	}

	return termSupportsColor(os.Getenv("TERM"))
}

// termSupportsColor checks the terminfo entry for name.
// Unknown terminals are assumed capable; TERM is often unset on Windows
// consoles and set to names missing from the built-in database elsewhere.
func termSupportsColor(name string) bool {
	switch name {
	case "":
		return true
	case "dumb":
		return false
	}

	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		return true
	}
	return ti.Colors >= minColors
}
