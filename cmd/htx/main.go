// Package main provides the CLI tool for the .htx compiler.
//
// Usage:
//
//	htx generate [path...]    Generate Go code from .htx files
//	htx check [path...]       Check .htx files without generating
//	htx help                  Show help
//
// Examples:
//
//	htx generate ./...        Recursively find and compile all .htx files
//	htx generate ./components Process a specific directory
//	htx generate page.htx     Process a specific file
//	htx check page.htx        Check syntax without generating
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-htx/internal/debug"
)

const version = "0.1.0"

const usage = `htx - compiler for .htx component files

Usage:
  htx <command> [options] [path...]

Commands:
  generate    Generate Go code from .htx files
  check       Check .htx files without generating code
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output

Examples:
  htx generate ./...           Recursively process all .htx files
  htx generate ./components    Process files in a directory
  htx generate page.htx        Process a specific file
  htx generate -v ./...        Verbose output during generation
  htx check page.htx           Check syntax without generating

For more information, see https://github.com/grindlemire/go-htx
`

func main() {
	defer debug.Close()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]
	debug.Log("command %s %v", command, args)

	switch command {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorPrefix(), err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorPrefix(), err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("htx version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// errorPrefix colors the error marker when stderr is a terminal.
func errorPrefix() string {
	if stderrIsTerminal() {
		return "\x1b[31merror:\x1b[0m"
	}
	return "error:"
}
