//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// stderrIsTerminal reports whether stderr is attached to a console, so
// error output can be colored without polluting redirected logs.
func stderrIsTerminal() bool {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(os.Stderr.Fd()), &mode)
	return err == nil
}
