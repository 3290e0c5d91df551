package inquire

import "io"

// mockInput implements Input for testing and development.
//
// This implementation provides predictable, deterministic behavior for unit tests.
// Every Read returns the next pre-configured chunk, the way a terminal in raw
// mode returns whatever bytes arrived since the last read, and io.EOF once the
// chunks are exhausted.
//
// Features:
//   - Deterministic input: one chunk per read for reproducible tests
//   - Mode tracking: counts raw mode switches and records whether raw mode
//     is currently held, so tests can verify it is released after every read
//   - Configurable interactivity: emulates both a terminal and a pipe
type mockInput struct {
	chunks        [][]byte // Pre-configured reads
	pos           int      // Index of the next chunk
	interactive   bool     // Reported by IsInteractive
	rawMode       bool     // Raw mode currently held
	cbreak        bool     // cbreak flag of the last SetRawMode(true, ...)
	rawEnters     int      // Number of SetRawMode(true, ...) calls
	rawExits      int      // Number of SetRawMode(false, ...) calls
	rawDuringRead []bool   // rawMode observed by each Read
	readErr       error    // Returned once all chunks are read (default io.EOF)
}

func newMockInput(chunks ...string) *mockInput {
	m := &mockInput{
		interactive: true,
	}
	for _, c := range chunks {
		m.chunks = append(m.chunks, []byte(c))
	}
	return m
}

func (m *mockInput) Read(p []byte) (int, error) {
	m.rawDuringRead = append(m.rawDuringRead, m.rawMode)
	if m.pos >= len(m.chunks) {
		if m.readErr != nil {
			return 0, m.readErr
		}
		return 0, io.EOF
	}
	n := copy(p, m.chunks[m.pos])
	m.pos++
	return n, nil
}

func (m *mockInput) IsInteractive() bool {
	return m.interactive
}

func (m *mockInput) SetRawMode(enabled, cbreak bool) error {
	if enabled {
		m.rawEnters++
		m.cbreak = cbreak
	} else {
		m.rawExits++
	}
	m.rawMode = enabled
	return nil
}
