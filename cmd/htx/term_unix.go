//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// stderrIsTerminal reports whether stderr is attached to a terminal, so
// error output can be colored without polluting redirected logs.
func stderrIsTerminal() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}
