//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// cookedFlags are the local modes a shell expects back after a no-echo prompt
const cookedFlags = unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN

// resetTerminalMode turns echo and line editing back on for the controlling
// terminal. It goes through /dev/tty so a redirected stdin does not matter.
// Failures are dropped: this runs while the process is already going down
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	if t.Lflag&cookedFlags == cookedFlags && t.Iflag&unix.ICRNL != 0 {
		return
	}

	t.Lflag |= cookedFlags
	t.Iflag |= unix.ICRNL
	_ = unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}
