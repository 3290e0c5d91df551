package inquire

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors of the parts of a prompt.
type ColorScheme struct {
	Name    string `json:"name"`
	Prefix  Color  `json:"prefix"`
	Message Color  `json:"message"`
	Default Color  `json:"default"`
	Pointer Color  `json:"pointer"`
	Answer  Color  `json:"answer"`
	Hint    Color  `json:"hint"`
	Error   Color  `json:"error"`
	Plain   bool   `json:"plain"` // emit no escape sequences at all
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a cyan prefix and bold message
var ThemeDefault = &ColorScheme{
	Name:    "default",
	Prefix:  Color{R: 0, G: 255, B: 255, Bold: true},
	Message: Color{R: 255, G: 255, B: 255, Bold: true},
	Default: Color{R: 128, G: 128, B: 128},
	Pointer: Color{R: 128, G: 128, B: 128},
	Answer:  Color{R: 0, G: 255, B: 0},
	Hint:    Color{R: 128, G: 128, B: 128},
	Error:   Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &ColorScheme{
	Name:    "Dracula",
	Prefix:  Color{R: 255, G: 121, B: 198, Bold: true},
	Message: Color{R: 248, G: 248, B: 242, Bold: true},
	Default: Color{R: 98, G: 114, B: 164},
	Pointer: Color{R: 189, G: 147, B: 249},
	Answer:  Color{R: 80, G: 250, B: 123},
	Hint:    Color{R: 98, G: 114, B: 164},
	Error:   Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:    "Accessible",
	Prefix:  Color{R: 0, G: 114, B: 178, Bold: true},
	Message: Color{R: 255, G: 255, B: 255, Bold: true},
	Default: Color{R: 204, G: 204, B: 204},
	Pointer: Color{R: 204, G: 204, B: 204},
	Answer:  Color{R: 86, G: 180, B: 233, Bold: true},
	Hint:    Color{R: 204, G: 204, B: 204},
	Error:   Color{R: 230, G: 159, B: 0, Bold: true},
}

// ThemePlain writes no colors. It is used when the output is not a terminal.
var ThemePlain = &ColorScheme{
	Name:  "plain",
	Plain: true,
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// paint wraps s in the escape sequences of c, unless the scheme is plain or s
// is empty.
func (cs *ColorScheme) paint(c Color, s string) string {
	if cs == nil || cs.Plain || s == "" {
		return s
	}
	return c.ToANSI() + s + Reset()
}
