//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package inquire

import "golang.org/x/sys/unix"

// makeCbreak disables line buffering and echo on fd but, unlike term.MakeRaw,
// leaves ISIG set so Ctrl+C still raises SIGINT.
func makeCbreak(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	termios.Lflag &^= unix.ECHO | unix.ICANON
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}
