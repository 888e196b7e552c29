// Command validate-imports enforces the one-way import rule: internal
// packages may only be imported by the owl facade, the commands and
// other internal packages.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"biopaxcore/internal/validation"
)

var (
	exitFunc = os.Exit
	getwd    = os.Getwd
	check    = validation.LoadAndCheck
)

func main() {
	exitFunc(run(os.Args, os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) == 0 {
		return 1
	}
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	dir := flags.String("dir", "", "module directory to scan (default working directory)")
	if err := flags.Parse(args[1:]); err != nil {
		return 1
	}
	base := *dir
	if base == "" {
		wd, err := getwd()
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "resolve working directory: %v\n", err)
			return 1
		}
		base = wd
	}
	violations, err := check(base)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "import guard failed: %v\n", err)
		return 1
	}
	if len(violations) > 0 {
		_, _ = fmt.Fprintf(stderr, "found %d forbidden internal imports:\n", len(violations))
		for _, v := range violations {
			_, _ = fmt.Fprintf(stderr, "  %s\n", v)
		}
		return 1
	}
	return 0
}
