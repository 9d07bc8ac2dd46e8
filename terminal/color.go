package terminal

import (
	"errors"
	"fmt"
	"strings"
)

// Color is one of the fixed foreground colors the package can emit
type Color uint8

const (
	ColorReset Color = iota
	ColorRed
	ColorGreen
	ColorYellow

	colorCount
)

// SGR payloads, indexed by Color
var colorSequences = [colorCount]string{
	ColorReset:  "\x1b[0m",
	ColorRed:    "\x1b[31m",
	ColorGreen:  "\x1b[32m",
	ColorYellow: "\x1b[33m",
}

var colorNames = [colorCount]string{
	ColorReset:  "reset",
	ColorRed:    "red",
	ColorGreen:  "green",
	ColorYellow: "yellow",
}

// ErrUnknownColor is returned by ParseColor for names outside the color set
var ErrUnknownColor = errors.New("unknown color")

// Valid reports whether c is a member of the color set
func (c Color) Valid() bool {
	return c < colorCount
}

// Sequence returns the escape sequence selecting c.
// Panics if c is not a valid Color.
func (c Color) Sequence() string {
	if !c.Valid() {
		panic(fmt.Sprintf("terminal: invalid color %d", uint8(c)))
	}
	return colorSequences[c]
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Colors returns every member of the color set in declaration order
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorReset; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseColor resolves a color by name, ignoring case and surrounding space
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Colorize wraps text in c's sequence followed by the reset sequence.
// Existing escape sequences inside text are left untouched, so nested calls
// simply stack their sequences.
func Colorize(text string, c Color) string {
	return c.Sequence() + text + colorSequences[ColorReset]
}

// ColorChoice selects when color output is used
type ColorChoice uint8

const (
	ChoiceAuto ColorChoice = iota
	ChoiceAlways
	ChoiceNever
)

func (c ColorChoice) String() string {
	switch c {
	case ChoiceAlways:
		return "always"
	case ChoiceNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorChoice maps a flag value to a ColorChoice
func ParseColorChoice(s string) (ColorChoice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ChoiceAuto, nil
	case "always", "on", "true", "yes":
		return ChoiceAlways, nil
	case "never", "off", "false", "no":
		return ChoiceNever, nil
	default:
		return ChoiceAuto, fmt.Errorf("invalid color choice %q (want auto, always or never)", s)
	}
}
