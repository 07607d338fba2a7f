package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
)

const (
	// runtimeModulePath is the module generated code imports.
	runtimeModulePath = "github.com/grindlemire/go-htx"

	// minRuntimeVersion is the oldest runtime the current generator
	// emits compatible code for.
	minRuntimeVersion = "v0.1.0"
)

// checkRuntimeRequirement inspects the go.mod enclosing dir and returns a
// warning when it does not require a compatible runtime version. Generated
// code imports the runtime package, so a missing or stale requirement means
// the output will not build. An empty string means no warning.
func checkRuntimeRequirement(dir string) string {
	path, err := findGoMod(dir)
	if err != nil {
		return fmt.Sprintf("no go.mod found above %s; generated code requires %s", dir, runtimeModulePath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	mf, err := modfile.Parse(path, data, nil)
	if err != nil {
		return ""
	}

	// The runtime module generates its own test fixtures.
	if mf.Module != nil && mf.Module.Mod.Path == runtimeModulePath {
		return ""
	}

	for _, req := range mf.Require {
		if req.Mod.Path != runtimeModulePath {
			continue
		}
		if semver.Compare(req.Mod.Version, minRuntimeVersion) < 0 {
			return fmt.Sprintf("go.mod requires %s %s, but generated code needs %s or newer",
				runtimeModulePath, req.Mod.Version, minRuntimeVersion)
		}
		return ""
	}

	return fmt.Sprintf("go.mod does not require %s; run go get %s", runtimeModulePath, runtimeModulePath)
}

// findGoMod walks up from dir looking for a go.mod file.
func findGoMod(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(abs, "go.mod")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no go.mod found")
		}
		abs = parent
	}
}
