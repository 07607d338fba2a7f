package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-htx/internal/debug"
	"github.com/grindlemire/go-htx/internal/htxgen"
)

// runGenerate implements the generate subcommand.
// It compiles .htx files into Go source files with source maps alongside.
func runGenerate(args []string) error {
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
		fmt.Printf("Found %d .htx file(s)\n", len(files))
	}
	debug.Log("generate: %d file(s) from %v", len(files), paths)

	if warning := checkRuntimeRequirement(filepath.Dir(files[0])); warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	// Files compile independently, so fan out with a bounded pool. Failures
	// are reported per file and the rest keep going.
	var (
		g          errgroup.Group
		stderrMu   sync.Mutex
		errorCount atomic.Int64
	)
	g.SetLimit(runtime.NumCPU())

	for _, inputPath := range files {
		inputPath := inputPath
		outputPath := outputFileName(inputPath)

		if verbose {
			fmt.Printf("Processing %s -> %s\n", inputPath, outputPath)
		}

		g.Go(func() error {
			if err := generateFile(inputPath, outputPath); err != nil {
				stderrMu.Lock()
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				stderrMu.Unlock()
				errorCount.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if n := errorCount.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}

	if verbose {
		fmt.Printf("Successfully generated %d file(s)\n", len(files))
	}

	return nil
}

// collectHtxFiles finds all .htx files from the given paths.
// Supports:
//   - Direct file paths: "page.htx"
//   - Directory paths: "./components"
//   - Recursive pattern: "./..."
func collectHtxFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "." || root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ".htx") {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".htx") {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ".htx") {
			files = append(files, path)
		}
	}

	return files, nil
}

// outputFileName converts a .htx filename to its output .go filename.
// Examples:
//
//	page.htx     -> page_htx.go
//	my-app.htx   -> my_app_htx.go
func outputFileName(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)

	name := strings.TrimSuffix(base, ".htx")
	name = strings.ReplaceAll(name, "-", "_")

	return filepath.Join(dir, name+"_htx.go")
}

// generateFile compiles one .htx file and writes the Go source and its
// source map.
func generateFile(inputPath, outputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	// Just the filename: it appears in error messages, the generated
	// header, and the line directive.
	filename := filepath.Base(inputPath)

	output, sourceMap, err := htxgen.ParseAndGenerate(filename, string(source), htxgen.Options{Header: true})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, output, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	sourceMap.GoFile = filepath.Base(outputPath)
	if err := sourceMap.WriteFile(htxgen.SourceMapFileName(outputPath)); err != nil {
		return fmt.Errorf("writing source map: %w", err)
	}

	debug.Log("generated %s (%d span mappings)", outputPath, len(sourceMap.Mappings))
	return nil
}
