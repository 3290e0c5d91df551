package inquire

import (
	"io"
	"strings"
)

// position is a cursor location inside the rendered block. Row 0 is the
// first visual line of the block.
type position struct {
	row int
	col int
}

// renderer repaints a prompt block in place.
//
// Each frame is assembled in memory and written with a single Write, with the
// cursor hidden while painting, so a redraw never shows a half-drawn block.
// The renderer itself keeps no state: the session passes the cursor position
// it left behind after the previous frame, which is where erasing starts from.
type renderer struct {
	output      io.Writer    // Target output writer (typically stdout or colorable wrapper)
	colorScheme *ColorScheme // Color configuration for themed rendering
	columns     func() int   // Terminal width, 0 when unknown
}

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme, columns func() int) *renderer {
	if columns == nil {
		columns = func() int { return 0 }
	}
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
		columns:     columns,
	}
}

// draw writes content as a new frame and leaves the cursor at cursor.
//
// When erasePrev is set the previous frame is erased first: the cursor moves from
// prev back to the first column of the block and everything below is wiped.
// It returns the number of visual lines the frame occupies.
func (r *renderer) draw(content string, erasePrev bool, prev, cursor position, columns int) (int, error) {
	var b strings.Builder
	b.WriteString(cursorHide())
	if erasePrev {
		b.WriteString(r.homeSequence(prev))
		b.WriteString(eraseDown())
	}
	b.WriteString(content)

	lines := countLines(content, columns)

	// The cursor now sits at the end of the last visual line.
	b.WriteString(cursorUp(lines - cursor.row - 1))
	b.WriteString(cursorTo(cursor.col))
	b.WriteString(cursorShow())

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		return 0, err
	}
	return lines, nil
}

// erase wipes the frame whose cursor was left at prev and leaves the cursor at
// the start of where the block was.
func (r *renderer) erase(prev position) error {
	_, err := io.WriteString(r.output, r.homeSequence(prev)+eraseDown())
	return err
}

// finish moves the cursor below a frame of the given size that is left on
// screen, and makes the cursor visible.
func (r *renderer) finish(prev position, lines int) error {
	_, err := io.WriteString(r.output, cursorDown(lines-prev.row-1)+"\n"+cursorShow())
	return err
}

func (r *renderer) showCursor() error {
	_, err := io.WriteString(r.output, cursorShow())
	return err
}

// writeLine prints a line below whatever is on screen and shows the cursor.
func (r *renderer) writeLine(line string) error {
	_, err := io.WriteString(r.output, line+"\n"+cursorShow())
	return err
}

func (r *renderer) homeSequence(prev position) string {
	return cursorUp(prev.row) + cursorLeft()
}

// countLines returns the number of visual lines content takes on a terminal
// that is columns cells wide.
//
// Every logical line takes at least one visual line, including an empty one,
// and a line wider than the terminal takes one more line per wrap. When the
// width is unknown (columns <= 0) only logical lines are counted.
func countLines(content string, columns int) int {
	total := 0
	for _, line := range strings.Split(content, "\n") {
		total += lineHeight(printableWidth(line), columns)
	}
	return total
}

// lineHeight returns the visual lines taken by a line width cells wide.
func lineHeight(width, columns int) int {
	if columns <= 0 || width <= columns {
		return 1
	}
	return (width + columns - 1) / columns
}

// wrapPosition returns where the cursor lands after writing width cells from
// the start of a line that is lineWidth cells wide.
//
// When the line ends exactly at the right margin the terminal keeps the
// cursor on the last row, in the last column, until something more is
// written; the position then stays inside the rows counted by countLines.
func wrapPosition(width, lineWidth, columns int) position {
	if columns <= 0 {
		return position{row: 0, col: width}
	}
	if width > 0 && width%columns == 0 && width >= lineWidth {
		return position{row: width/columns - 1, col: columns - 1}
	}
	return position{row: width / columns, col: width % columns}
}
