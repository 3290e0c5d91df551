package inquire

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
)

func TestMockInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		chunks []string
	}{
		{name: "single chunk", chunks: []string{"hello"}},
		{name: "several chunks", chunks: []string{"he", "llo", "\r"}},
		{name: "unicode", chunks: []string{"こんにちは"}},
		{name: "empty chunk", chunks: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMockInput(tt.chunks...)

			if !mock.IsInteractive() {
				t.Error("Expected mock input to be interactive by default")
			}

			buf := make([]byte, readBufferSize)
			for i, chunk := range tt.chunks {
				n, err := mock.Read(buf)
				if err != nil {
					t.Errorf("Read[%d] error = %v", i, err)
				}
				if got := string(buf[:n]); got != chunk {
					t.Errorf("Read[%d] = %q, want %q", i, got, chunk)
				}
			}

			// Test EOF after input is consumed
			if _, err := mock.Read(buf); !errors.Is(err, io.EOF) {
				t.Errorf("Expected EOF after consuming all input, got %v", err)
			}
		})
	}
}

func TestMockInputRawModeTracking(t *testing.T) {
	t.Parallel()

	mock := newMockInput("a")

	// Initial state should be not raw
	if mock.rawMode {
		t.Error("Expected initial rawMode to be false")
	}

	if err := mock.SetRawMode(true, true); err != nil {
		t.Errorf("SetRawMode(true) error = %v", err)
	}
	if !mock.rawMode || !mock.cbreak {
		t.Error("Expected raw cbreak mode after SetRawMode(true, true)")
	}

	buf := make([]byte, 4)
	if _, err := mock.Read(buf); err != nil {
		t.Errorf("Read() error = %v", err)
	}

	if err := mock.SetRawMode(false, true); err != nil {
		t.Errorf("SetRawMode(false) error = %v", err)
	}
	if mock.rawMode {
		t.Error("Expected rawMode to be false after SetRawMode(false)")
	}
	if mock.rawEnters != 1 || mock.rawExits != 1 {
		t.Errorf("Expected one enter and one exit, got %d and %d", mock.rawEnters, mock.rawExits)
	}
	if len(mock.rawDuringRead) != 1 || !mock.rawDuringRead[0] {
		t.Errorf("Expected the read to happen in raw mode, got %v", mock.rawDuringRead)
	}
}

func TestMockInputReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("device removed")
	mock := newMockInput()
	mock.readErr = readErr

	if _, err := mock.Read(make([]byte, 4)); !errors.Is(err, readErr) {
		t.Errorf("Expected configured read error, got %v", err)
	}
}

func TestFileInputOnPipe(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	input := NewFileInput(r)

	if input.IsInteractive() {
		t.Error("Expected a pipe not to be interactive")
	}

	// Raw mode is a no-op on anything that is not a terminal.
	if err := input.SetRawMode(true, false); err != nil {
		t.Errorf("SetRawMode(true) on a pipe error = %v", err)
	}
	if err := input.SetRawMode(false, false); err != nil {
		t.Errorf("SetRawMode(false) on a pipe error = %v", err)
	}
	if err := input.SetRawMode(false, false); err != nil {
		t.Errorf("Restoring twice should not fail: %v", err)
	}

	if _, err := w.WriteString("yes\r"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	buf := make([]byte, readBufferSize)
	n, err := input.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := string(buf[:n]); got != "yes\r" {
		t.Errorf("Read() = %q, want %q", got, "yes\r")
	}
}

func TestSessionOnPipe(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer r.Close()

	go func() {
		defer w.Close()
		_, _ = w.WriteString("Bob\n")
	}()

	var output bytes.Buffer
	name, err := Ask(NewText(), "Name", WithInput(NewFileInput(r)), WithOutput(&output))
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if name != "Bob" {
		t.Errorf("Ask() = %q, want %q", name, "Bob")
	}
}

func TestColumnsOf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if got := columnsOf(&buf)(); got != 0 {
		t.Errorf("Expected width 0 for a buffer, got %d", got)
	}

	f, err := os.CreateTemp(t.TempDir(), "output")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()

	if got := columnsOf(f)(); got != 0 {
		t.Errorf("Expected width 0 for a regular file, got %d", got)
	}
	if isInteractiveWriter(f) {
		t.Error("Expected a regular file not to be interactive")
	}
	if isInteractiveWriter(&buf) {
		t.Error("Expected a buffer not to be interactive")
	}
}

func TestDefaultOutput(t *testing.T) {
	t.Parallel()

	if defaultOutput() == nil {
		t.Error("Expected non-nil default output")
	}
}

func TestInputInterfaceCompliance(_ *testing.T) {
	var _ Input = &fileInput{}
	var _ Input = &ttyInput{}
	var _ io.Closer = &ttyInput{}
	var _ Input = &mockInput{}
}
