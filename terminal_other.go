//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package inquire

import "golang.org/x/term"

// makeCbreak falls back to full raw mode where termios is not available.
func makeCbreak(fd int) error {
	_, err := term.MakeRaw(fd)
	return err
}
