package inquire

import (
	"context"
	"strings"
)

// Text is a single-line text widget with basic line editing.
//
// Supported keys:
//   - Left/Right, Ctrl+B/Ctrl+F: move the cursor
//   - Home/End, Ctrl+A/Ctrl+E: move to the beginning or end
//   - Ctrl+Left/Ctrl+Right: move by word
//   - Backspace, Delete: delete a character
//   - Ctrl+K: delete to the end, Ctrl+U: delete the line, Ctrl+W: delete a word
type Text struct {
	buffer []rune
	cursor int
	mask   rune // replaces every rune on screen when non-zero
}

// NewText returns an empty text widget.
func NewText() *Text {
	return &Text{}
}

// NewPassword returns a text widget that echoes '*' for every typed rune and
// never shows the answer.
func NewPassword() *Text {
	return &Text{mask: '*'}
}

// Value implements Widget. The typed text is always present; an empty
// string lets a configured default apply.
func (t *Text) Value() (string, bool) {
	return string(t.buffer), true
}

// Validate implements Widget and accepts any text.
func (t *Text) Validate(context.Context, string) error {
	return nil
}

// Transform implements Widget and trims surrounding whitespace.
func (t *Text) Transform(_ context.Context, value string) (string, error) {
	return strings.TrimSpace(value), nil
}

// Format implements Widget.
func (t *Text) Format(value string) string {
	if t.mask != 0 {
		return strings.Repeat(string(t.mask), len([]rune(value)))
	}
	return value
}

// Inline implements Inliner.
func (t *Text) Inline() (string, int) {
	return t.Format(string(t.buffer)), t.cursor
}

// HandleKey implements KeyHandler.
func (t *Text) HandleKey(ev KeyEvent) {
	switch {
	case ev.Name == "left" && ev.Ctrl, ev.Name == "b" && ev.Meta:
		t.cursor = t.findWordBoundary(-1)
	case ev.Name == "right" && ev.Ctrl, ev.Name == "f" && ev.Meta:
		t.cursor = t.findWordBoundary(1)
	case ev.Name == "left", ev.Name == "b" && ev.Ctrl:
		if t.cursor > 0 {
			t.cursor--
		}
	case ev.Name == "right", ev.Name == "f" && ev.Ctrl:
		if t.cursor < len(t.buffer) {
			t.cursor++
		}
	case ev.Name == "home", ev.Name == "a" && ev.Ctrl:
		t.cursor = 0
	case ev.Name == "end", ev.Name == "e" && ev.Ctrl:
		t.cursor = len(t.buffer)
	case ev.Name == "backspace" || (ev.Name == "h" && ev.Ctrl):
		if t.cursor > 0 {
			t.buffer = append(t.buffer[:t.cursor-1], t.buffer[t.cursor:]...)
			t.cursor--
		}
	case ev.Name == "delete", ev.Name == "d" && ev.Ctrl:
		if t.cursor < len(t.buffer) {
			t.buffer = append(t.buffer[:t.cursor], t.buffer[t.cursor+1:]...)
		}
	case ev.Name == "k" && ev.Ctrl:
		t.buffer = t.buffer[:t.cursor]
	case ev.Name == "u" && ev.Ctrl:
		t.buffer = []rune{}
		t.cursor = 0
	case ev.Name == "w" && ev.Ctrl:
		if t.cursor > 0 {
			newPos := t.findWordBoundary(-1)
			t.buffer = append(t.buffer[:newPos], t.buffer[t.cursor:]...)
			t.cursor = newPos
		}
	default:
		if r, ok := ev.printable(); ok {
			t.insertRune(r)
		}
	}
}

func (t *Text) insertRune(r rune) {
	t.buffer = append(t.buffer[:t.cursor], append([]rune{r}, t.buffer[t.cursor:]...)...)
	t.cursor++
}

// findWordBoundary returns the start of the next word (direction > 0) or of
// the previous word (direction < 0).
func (t *Text) findWordBoundary(direction int) int {
	if direction > 0 {
		pos := t.cursor
		for pos < len(t.buffer) && !isWordChar(t.buffer[pos]) {
			pos++ // Skip non-word characters
		}
		for pos < len(t.buffer) && isWordChar(t.buffer[pos]) {
			pos++ // Skip word characters
		}
		return pos
	}
	pos := t.cursor
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWordChar(t.buffer[pos]) {
		pos--
	}
	for pos > 0 && isWordChar(t.buffer[pos-1]) {
		pos--
	}
	return pos
}

// isWordChar reports whether r is part of a word for word-wise movement and
// deletion: ASCII letters, digits and underscore.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// Confirm is a yes/no widget. Typing y or n records the answer, which is
// submitted with Enter. Submitting without an answer selects the default, or
// "no" when there is none.
type Confirm struct {
	answer bool
	set    bool
}

// NewConfirm returns a confirm widget with no answer yet.
func NewConfirm() *Confirm {
	return &Confirm{}
}

// Value implements Widget.
func (c *Confirm) Value() (bool, bool) {
	return c.answer, c.set
}

// Validate implements Widget and accepts both answers.
func (c *Confirm) Validate(context.Context, bool) error {
	return nil
}

// Transform implements Widget.
func (c *Confirm) Transform(_ context.Context, value bool) (bool, error) {
	return value, nil
}

// Format implements Widget.
func (c *Confirm) Format(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// Inline implements Inliner.
func (c *Confirm) Inline() (string, int) {
	if !c.set {
		return "", 0
	}
	text := c.Format(c.answer)
	return text, len(text)
}

// HandleKey implements KeyHandler.
func (c *Confirm) HandleKey(ev KeyEvent) {
	if ev.Ctrl || ev.Meta {
		return
	}
	switch ev.Name {
	case "y":
		c.answer, c.set = true, true
	case "n":
		c.answer, c.set = false, true
	case "left", "right", "tab":
		if c.set {
			c.answer = !c.answer
		}
	}
}
