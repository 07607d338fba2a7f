package htx

import "sync/atomic"

// devMode gates prop value and choice validation. Prop name checks and
// required-prop access checks run regardless.
var devMode atomic.Bool

func init() {
	devMode.Store(true)
}

// SetDevMode turns development-mode validation on or off for the whole
// process.
func SetDevMode(on bool) {
	devMode.Store(on)
}

// InDevMode reports whether development-mode validation is active.
func InDevMode() bool {
	return devMode.Load()
}

// OverrideDevMode runs fn with dev mode forced to the given setting, then
// restores the previous one.
func OverrideDevMode(on bool, fn func()) {
	prev := devMode.Swap(on)
	defer devMode.Store(prev)
	fn()
}
