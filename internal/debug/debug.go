package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables debug logging. Its
// value is the log file path.
const EnvVar = "HTX_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// Enabled reports whether debug logging is active.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	ensureOpenLocked()
	return logFile != nil
}

// ensureOpenLocked opens the log file named by EnvVar once. Caller must
// hold mu.
func ensureOpenLocked() {
	if checked {
		return
	}
	checked = true

	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	logFile = f
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a timestamped message to the debug log. It is a no-op unless
// the HTX_DEBUG environment variable names a log file.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureOpenLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
