package inquire

import (
	"fmt"
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ANSI control sequences used by the renderer.
const (
	escCursorUp   = "\x1b[%dA" // n rows up
	escCursorDown = "\x1b[%dB" // n rows down
	escCursorTo   = "\x1b[%dG" // moves cursor to column n (1-based)
	escEraseDown  = "\x1b[0J"  // clears from cursor until end of screen
	escCursorShow = "\x1b[?25h"
	escCursorHide = "\x1b[?25l"
)

// ansiPattern matches CSI, OSC and two-byte escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b(?:` +
	`\[[0-9;?]*[A-Za-z]` +
	`|` +
	`\].*?(?:\x1b\\|\x07)` +
	`|` +
	`[()][A-B0-2]` +
	`)`)

func cursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf(escCursorUp, n)
}

func cursorDown(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf(escCursorDown, n)
}

// cursorTo moves to the 0-based column col.
func cursorTo(col int) string {
	if col < 0 {
		col = 0
	}
	return fmt.Sprintf(escCursorTo, col+1)
}

func cursorLeft() string {
	return cursorTo(0)
}

func eraseDown() string {
	return escEraseDown
}

func cursorShow() string {
	return escCursorShow
}

func cursorHide() string {
	return escCursorHide
}

// stripANSI removes escape sequences from s.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// printableWidth returns the number of terminal cells s occupies once escape
// sequences are removed. Wide runes count as two cells.
func printableWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}
