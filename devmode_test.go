package htx

import "testing"

func TestDevMode(t *testing.T) {
	if !InDevMode() {
		t.Error("InDevMode() = false by default, want true")
	}

	SetDevMode(false)
	t.Cleanup(func() { SetDevMode(true) })
	if InDevMode() {
		t.Error("InDevMode() = true after SetDevMode(false)")
	}
}

func TestOverrideDevMode_Restores(t *testing.T) {
	SetDevMode(true)

	OverrideDevMode(false, func() {
		if InDevMode() {
			t.Error("InDevMode() = true inside override, want false")
		}
	})
	if !InDevMode() {
		t.Error("InDevMode() = false after override, want restored true")
	}

	// The previous setting comes back even when fn panics.
	func() {
		defer func() { recover() }()
		OverrideDevMode(false, func() { panic("stop") })
	}()
	if !InDevMode() {
		t.Error("InDevMode() = false after panicking override, want restored true")
	}
}
