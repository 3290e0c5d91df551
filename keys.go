package inquire

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeyEvent is one logical keypress decoded from raw input bytes.
type KeyEvent struct {
	Name     string // symbolic name such as "return", "up" or "a"; empty for unnamed keys
	Sequence string // raw bytes that produced the event
	Ctrl     bool
	Meta     bool
	Shift    bool
}

// Matches reports whether the event is the key called key, compared against
// both the symbolic name and the raw sequence.
func (e KeyEvent) Matches(key string) bool {
	if key == "" {
		return false
	}
	return e.Name == key || e.Sequence == key
}

// isInterrupt reports whether the event is Ctrl+C.
func (e KeyEvent) isInterrupt() bool {
	return (e.Ctrl && e.Name == "c") || e.Sequence == "\x03"
}

// printable returns the rune the event would insert into a text buffer.
func (e KeyEvent) printable() (rune, bool) {
	if e.Ctrl || e.Meta || e.Sequence == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(e.Sequence)
	if size != len(e.Sequence) || r == utf8.RuneError || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

// ActionSubmit is the key binding action that submits the current answer.
const ActionSubmit = "submit"

// KeyBindings maps an action name to the key names or raw sequences that
// trigger it.
type KeyBindings map[string][]string

// DefaultKeyBindings returns the bindings used when none are configured:
// Enter and Return submit.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ActionSubmit: {"enter", "return"},
	}
}

// Bind replaces the keys of action.
//
// Example:
//
//	keys := inquire.DefaultKeyBindings()
//	keys.Bind(inquire.ActionSubmit, "y", "tab")
func (k KeyBindings) Bind(action string, keys ...string) {
	k[action] = append([]string(nil), keys...)
}

// Matches reports whether ev triggers action.
func (k KeyBindings) Matches(action string, ev KeyEvent) bool {
	for _, key := range k[action] {
		if ev.Matches(key) {
			return true
		}
	}
	return false
}

// merge returns a copy of k where every action present in override replaces
// the action in k. Keys of one action are never merged.
func (k KeyBindings) merge(override KeyBindings) KeyBindings {
	merged := make(KeyBindings, len(k)+len(override))
	for action, keys := range k {
		merged[action] = append([]string(nil), keys...)
	}
	for action, keys := range override {
		merged[action] = append([]string(nil), keys...)
	}
	return merged
}

// Decoder turns the bytes of one read into key events, in input order.
type Decoder interface {
	Decode(b []byte) []KeyEvent
}

// DefaultDecoder decodes xterm-style input: control characters, CSI and SS3
// escape sequences with modifier parameters, Meta (ESC-prefixed) keys and
// UTF-8 text.
type DefaultDecoder struct{}

// escapeNames maps escape sequences, with the leading ESC and any modifier
// parameter removed, to key names.
var escapeNames = map[string]string{
	"[A":  "up",
	"[B":  "down",
	"[C":  "right",
	"[D":  "left",
	"[E":  "clear",
	"[H":  "home",
	"[F":  "end",
	"[Z":  "tab",
	"OA":  "up",
	"OB":  "down",
	"OC":  "right",
	"OD":  "left",
	"OH":  "home",
	"OF":  "end",
	"OP":  "f1",
	"OQ":  "f2",
	"OR":  "f3",
	"OS":  "f4",
	"[1~": "home",
	"[2~": "insert",
	"[3~": "delete",
	"[4~": "end",
	"[5~": "pageup",
	"[6~": "pagedown",
	"[7~": "home",
	"[8~": "end",
}

// Decode implements Decoder.
func (DefaultDecoder) Decode(b []byte) []KeyEvent {
	if len(b) == 0 {
		return nil
	}
	s := string(b)
	events := make([]KeyEvent, 0, len(s))
	for len(s) > 0 {
		ev, n := decodeKey(s)
		events = append(events, ev)
		s = s[n:]
	}
	return events
}

// decodeKey decodes the first key of s and returns it with the number of
// bytes consumed.
func decodeKey(s string) (KeyEvent, int) {
	if s[0] == '\x1b' {
		return decodeEscape(s)
	}

	r, size := utf8.DecodeRuneInString(s)
	ev := KeyEvent{Sequence: s[:size]}
	switch {
	case r == '\r':
		ev.Name = "return"
	case r == '\n':
		ev.Name = "enter"
	case r == '\t':
		ev.Name = "tab"
	case r == '\x7f' || r == '\b':
		ev.Name = "backspace"
	case r == 0:
		ev.Name = "space"
		ev.Ctrl = true
	case r < 0x1b:
		// Ctrl+A .. Ctrl+Z
		ev.Name = string(rune('a' + r - 1))
		ev.Ctrl = true
	case r == ' ':
		ev.Name = "space"
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		ev.Name = string(r)
	case r >= 'A' && r <= 'Z':
		ev.Name = string(unicode.ToLower(r))
		ev.Shift = true
	}
	return ev, size
}

func decodeEscape(s string) (KeyEvent, int) {
	if len(s) == 1 {
		return KeyEvent{Name: "escape", Sequence: s}, 1
	}

	switch s[1] {
	case '[', 'O':
		n := escapeLength(s)
		ev := KeyEvent{Sequence: s[:n]}
		code, modifier := splitModifier(s[1:n])
		ev.Name = escapeNames[code]
		if code == "[Z" {
			ev.Shift = true
		}
		if modifier > 1 {
			m := modifier - 1
			ev.Shift = ev.Shift || m&1 != 0
			ev.Meta = m&(2|8) != 0
			ev.Ctrl = m&4 != 0
		}
		return ev, n
	case '\x1b':
		// ESC ESC: a lone Escape followed by another key.
		return KeyEvent{Name: "escape", Sequence: s[:1]}, 1
	}

	// Meta+key arrives as ESC followed by the key.
	ev, n := decodeKey(s[1:])
	ev.Meta = true
	ev.Sequence = s[:1+n]
	return ev, 1 + n
}

// escapeLength returns the byte length of the CSI or SS3 sequence at the
// start of s, including the final byte.
func escapeLength(s string) int {
	if s[1] == 'O' {
		if len(s) >= 3 {
			return 3
		}
		return len(s)
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return len(s)
}

// maxEscapeLength bounds how far back completeLength looks for an
// unterminated escape sequence.
const maxEscapeLength = 16

// completeLength returns the length of the longest prefix of b that ends on a
// key boundary. The bytes after it are the start of an escape sequence or a
// UTF-8 rune that was cut off by the end of the read.
func completeLength(b []byte) int {
	end := len(b)
	for i := end - 1; i >= 0 && i >= end-maxEscapeLength; i-- {
		if b[i] == '\x1b' {
			if !escapeComplete(b[i:]) {
				return i
			}
			break
		}
	}
	for i := end - 1; i >= 0 && i >= end-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return i
			}
			break
		}
	}
	return end
}

// escapeComplete reports whether the escape sequence at the start of b has
// all of its bytes.
func escapeComplete(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	switch b[1] {
	case '[':
		for _, c := range b[2:] {
			if c >= 0x40 && c <= 0x7e {
				return true
			}
		}
		return false
	case 'O':
		return len(b) >= 3
	case '\x1b':
		return true
	}
	return utf8.FullRune(b[1:])
}

// splitModifier removes the xterm modifier parameter from a sequence such as
// "[1;5C" or "[3;2~" and returns the bare code with the modifier value.
func splitModifier(code string) (string, int) {
	semi := strings.IndexByte(code, ';')
	if semi < 0 || len(code) < 2 {
		return code, 0
	}
	final := code[len(code)-1:]
	modifier, err := strconv.Atoi(code[semi+1 : len(code)-1])
	if err != nil {
		return code, 0
	}
	prefix := code[:semi]
	if prefix == "[1" && final != "~" {
		prefix = "["
	}
	return prefix + final, modifier
}
