package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grindlemire/go-htx/internal/htxgen"
)

// runCheck implements the check subcommand.
// It parses and analyzes .htx files without generating code, for syntax
// checking and editor integration.
func runCheck(args []string) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectHtxFiles(paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .htx files found")
	}

	if verbose {
		fmt.Printf("Checking %d .htx file(s)\n", len(files))
	}

	if warning := checkRuntimeRequirement(filepath.Dir(files[0])); warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	var errorCount int
	for _, inputPath := range files {
		if verbose {
			fmt.Printf("Checking %s\n", inputPath)
		}

		if err := checkFile(inputPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
			continue
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}

	return nil
}

// checkFile parses and analyzes a single .htx file.
func checkFile(inputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	filename := filepath.Base(inputPath)

	file, err := htxgen.ParseFile(filename, string(source))
	if err != nil {
		return err
	}

	analyzer := htxgen.NewAnalyzer()
	return analyzer.Analyze(file)
}
