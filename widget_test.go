package inquire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func typeText(w KeyHandler, input string) {
	for _, ev := range (DefaultDecoder{}).Decode([]byte(input)) {
		w.HandleKey(ev)
	}
}

func TestTextEditing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantText   string
		wantCursor int
	}{
		{name: "typing", input: "hello", wantText: "hello", wantCursor: 5},
		{name: "backspace", input: "hello\x7f\x7f", wantText: "hel", wantCursor: 3},
		{name: "backspace at start", input: "ab\x1b[H\x7f", wantText: "ab", wantCursor: 0},
		{name: "insert in the middle", input: "hllo\x1b[D\x1b[D\x1b[De", wantText: "hello", wantCursor: 2},
		{name: "home and end", input: "world\x01hello \x05!", wantText: "hello world!", wantCursor: 12},
		{name: "delete", input: "abc\x1b[H\x1b[3~", wantText: "bc", wantCursor: 0},
		{name: "ctrl+k", input: "hello world\x1b[D\x1b[D\x1b[D\x1b[D\x1b[D\x0b", wantText: "hello ", wantCursor: 6},
		{name: "ctrl+u", input: "hello\x15", wantText: "", wantCursor: 0},
		{name: "ctrl+w", input: "hello world\x17", wantText: "hello ", wantCursor: 6},
		{name: "ctrl+w skips trailing spaces", input: "hello world  \x17", wantText: "hello ", wantCursor: 6},
		{name: "word left", input: "foo bar baz\x1b[1;5D\x1b[1;5D", wantText: "foo bar baz", wantCursor: 4},
		{name: "word right", input: "foo bar\x1b[H\x1b[1;5C", wantText: "foo bar", wantCursor: 3},
		{name: "meta word moves", input: "foo bar\x1bb\x1bf", wantText: "foo bar", wantCursor: 7},
		{name: "right at end stays", input: "ab\x1b[C", wantText: "ab", wantCursor: 2},
		{name: "wide runes", input: "日本", wantText: "日本", wantCursor: 2},
		{name: "escape sequences are not inserted", input: "a\x1b[A\x1bOP\tb", wantText: "ab", wantCursor: 2},
		{name: "uppercase", input: "Bob", wantText: "Bob", wantCursor: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := NewText()
			typeText(w, tt.input)

			text, cursor := w.Inline()
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantCursor, cursor)

			value, ok := w.Value()
			assert.True(t, ok)
			assert.Equal(t, tt.wantText, value)
		})
	}
}

func TestTextPipeline(t *testing.T) {
	t.Parallel()

	w := NewText()
	ctx := context.Background()

	assert.NoError(t, w.Validate(ctx, ""))
	got, err := w.Transform(ctx, "  Bob \t")
	assert.NoError(t, err)
	assert.Equal(t, "Bob", got)
	assert.Equal(t, "Bob", w.Format("Bob"))
}

func TestPassword(t *testing.T) {
	t.Parallel()

	w := NewPassword()
	typeText(w, "s3cr3t")

	text, cursor := w.Inline()
	assert.Equal(t, "******", text)
	assert.Equal(t, 6, cursor)

	value, _ := w.Value()
	assert.Equal(t, "s3cr3t", value)
	assert.Equal(t, "***", w.Format("abc"))
}

func TestFindWordBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		cursor    int
		direction int
		expected  int
	}{
		{name: "forward from start", text: "hello world", cursor: 0, direction: 1, expected: 5},
		{name: "forward from space", text: "hello world", cursor: 5, direction: 1, expected: 11},
		{name: "backward from end", text: "hello world", cursor: 11, direction: -1, expected: 6},
		{name: "backward from word start", text: "hello world", cursor: 6, direction: -1, expected: 0},
		{name: "backward at start", text: "hello", cursor: 0, direction: -1, expected: 0},
		{name: "underscore is a word char", text: "foo_bar baz", cursor: 0, direction: 1, expected: 7},
		{name: "punctuation separates", text: "foo-bar", cursor: 7, direction: -1, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := &Text{buffer: []rune(tt.text), cursor: tt.cursor}
			assert.Equal(t, tt.expected, w.findWordBoundary(tt.direction))
		})
	}
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantValue  bool
		wantOK     bool
		wantInline string
	}{
		{name: "no answer", input: "", wantValue: false, wantOK: false, wantInline: ""},
		{name: "yes", input: "y", wantValue: true, wantOK: true, wantInline: "yes"},
		{name: "uppercase yes", input: "Y", wantValue: true, wantOK: true, wantInline: "yes"},
		{name: "no", input: "n", wantValue: false, wantOK: true, wantInline: "no"},
		{name: "last key wins", input: "yn", wantValue: false, wantOK: true, wantInline: "no"},
		{name: "toggle", input: "y\t", wantValue: false, wantOK: true, wantInline: "no"},
		{name: "toggle without answer", input: "\x1b[C", wantValue: false, wantOK: false, wantInline: ""},
		{name: "other keys ignored", input: "yx", wantValue: true, wantOK: true, wantInline: "yes"},
		{name: "ctrl keys ignored", input: "y\x0e", wantValue: true, wantOK: true, wantInline: "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := NewConfirm()
			typeText(w, tt.input)

			value, ok := w.Value()
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantOK, ok)

			inline, cursor := w.Inline()
			assert.Equal(t, tt.wantInline, inline)
			assert.Equal(t, len(tt.wantInline), cursor)
		})
	}
}
