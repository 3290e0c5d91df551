package inquire

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Input is the byte source a session reads keypresses from.
//
// A session toggles raw mode around every single read and never keeps the
// terminal raw between reads, so an implementation only has to remember the
// state it needs to undo the most recent SetRawMode(true, ...).
//
// Implementations:
//   - NewFileInput: any *os.File (stdin, a pty, a pipe)
//   - ttyInput: the controlling terminal opened through go-tty, used when no
//     input is configured. Its modes are left as the user had them between
//     reads.
type Input interface {
	io.Reader
	// IsInteractive reports whether the input is attached to a terminal.
	IsInteractive() bool
	// SetRawMode enters (enabled=true) or leaves raw mode. With cbreak set,
	// signal-generating control characters still reach the OS.
	SetRawMode(enabled, cbreak bool) error
}

// fileInput implements Input on top of an *os.File using golang.org/x/term.
type fileInput struct {
	file          *os.File
	fd            int
	originalState *term.State // state to restore, nil when not in raw mode
}

// NewFileInput returns an Input reading from f. Raw mode is only applied when
// f is a terminal.
func NewFileInput(f *os.File) Input {
	return newFileInput(f)
}

func newFileInput(f *os.File) *fileInput {
	return &fileInput{
		file: f,
		fd:   int(f.Fd()),
	}
}

func (i *fileInput) Read(p []byte) (int, error) {
	return i.file.Read(p)
}

func (i *fileInput) IsInteractive() bool {
	return isInteractiveFd(i.file.Fd())
}

func (i *fileInput) SetRawMode(enabled, cbreak bool) error {
	if !enabled {
		return i.restore()
	}
	if !term.IsTerminal(i.fd) || i.originalState != nil {
		return nil
	}

	// Capture the baseline before every switch so that restore always returns
	// to what the user had, even if something else changed it between reads.
	state, err := term.GetState(i.fd)
	if err != nil {
		return err
	}
	if cbreak {
		err = makeCbreak(i.fd)
	} else {
		_, err = term.MakeRaw(i.fd)
	}
	if err != nil {
		return err
	}
	i.originalState = state
	return nil
}

func (i *fileInput) restore() error {
	if i.originalState == nil {
		return nil
	}
	err := term.Restore(i.fd, i.originalState)
	i.originalState = nil
	return err
}

// ttyInput is the default interactive input: the controlling terminal opened
// through go-tty, independent of where stdin points.
type ttyInput struct {
	*fileInput
	tty    *tty.TTY
	closed bool // double close panics on Windows
}

// ttyDevice is the controlling terminal, opened when no input is configured.
const ttyDevice = "/dev/tty"

func newTTYInput() (*ttyInput, error) {
	return newTTYInputAt(ttyDevice)
}

// newTTYInputAt opens the terminal at path through go-tty. go-tty turns echo
// and line buffering off as it opens the device, so the modes the device had
// before are put back at once: between reads the user's modes are in effect.
func newTTYInputAt(path string) (*ttyInput, error) {
	state, err := deviceState(stateDevice(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read terminal state: %w", err)
	}
	t, err := tty.OpenDevice(path)
	if err != nil {
		return nil, err
	}
	in := newFileInput(t.Input())
	if err := term.Restore(in.fd, state); err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("failed to restore terminal state: %w", err)
	}
	return &ttyInput{
		fileInput: in,
		tty:       t,
	}, nil
}

// deviceState returns the current modes of the terminal at path.
func deviceState(path string) (*term.State, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return term.GetState(int(f.Fd()))
}

// stateDevice returns the device whose modes go-tty changes when it opens
// path. On Windows that is always the console input.
func stateDevice(path string) string {
	if runtime.GOOS == "windows" {
		return "CONIN$"
	}
	return path
}

func (i *ttyInput) Close() error {
	if i.closed || i.tty == nil {
		return nil
	}
	i.closed = true
	return i.tty.Close()
}

// defaultOutput returns stdout, wrapped for ANSI support on Windows.
func defaultOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

type fder interface {
	Fd() uintptr
}

// columnsOf returns a width query for w. The query reports 0 when w is not a
// terminal or its size cannot be determined.
func columnsOf(w io.Writer) func() int {
	f, ok := w.(fder)
	if !ok {
		return func() int { return 0 }
	}
	return func() int {
		fd := f.Fd()
		if !isInteractiveFd(fd) {
			return 0
		}
		width, _, err := term.GetSize(int(fd))
		if err != nil || width <= 0 {
			return 0
		}
		return width
	}
}

// isInteractiveWriter reports whether w writes to a terminal.
func isInteractiveWriter(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && isInteractiveFd(f.Fd())
}

func isInteractiveFd(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
