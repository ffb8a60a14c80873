// numdiff decides whether two tabular files of floating-point
// measurements hold the same dataset within an absolute tolerance.
//
// Usage:
//
//	numdiff [-e epsilon] [-v] [-comma] file1 file2
//
// The first line of each file is a header and the second the first data
// row; both must match as exact text. Every later line is compared
// numerically, field by field, and the run stops at the first field
// whose absolute difference exceeds epsilon.
//
// Exit codes: 0 when the files match, 1 on any mismatch or fatal fault,
// 2 on usage errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/numdiff/internal/config"
	"github.com/dkoosis/numdiff/internal/version"
	"github.com/dkoosis/numdiff/pkg/compare"
	"github.com/dkoosis/numdiff/pkg/render"
	"github.com/dkoosis/numdiff/pkg/rowsource"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("numdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: numdiff [flags] file1 file2\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var (
		epsilon     float64
		verbose     bool
		comma       bool
		themeName   string
		showVersion bool
	)
	fs.Float64Var(&epsilon, "epsilon", cfg.Epsilon, "maximum absolute difference tolerated between numeric fields")
	fs.Float64Var(&epsilon, "e", cfg.Epsilon, "shorthand for -epsilon")
	fs.BoolVar(&verbose, "verbose", cfg.Verbose, "print full diagnostic detail on failure")
	fs.BoolVar(&verbose, "v", cfg.Verbose, "shorthand for -verbose")
	fs.BoolVar(&comma, "comma", cfg.Comma, "split fields on commas (quasi-CSV)")
	fs.StringVar(&themeName, "theme", cfg.Theme, "theme: default, mono")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return 2
	}
	pathA, pathB := rest[0], rest[1]

	renderer := render.New(selectTheme(themeName, cfg.NoColor, stderr))

	fileA, err := os.Open(pathA)
	if err != nil {
		return reportFault(stderr, err, verbose)
	}
	defer fileA.Close()
	fileB, err := os.Open(pathB)
	if err != nil {
		return reportFault(stderr, err, verbose)
	}
	defer fileB.Close()

	split := rowsource.Fields
	if comma {
		split = rowsource.Comma
	}

	res, err := compare.Compare(
		rowsource.New(pathA, fileA, split),
		rowsource.New(pathB, fileB, split),
		epsilon,
	)
	if err != nil {
		return reportFault(stderr, err, verbose)
	}
	if res.Kind == compare.Equal {
		return 0
	}

	fmt.Fprintln(stderr, renderer.Line(res))
	if verbose {
		fmt.Fprint(stderr, renderer.Verbose(res, pathA, pathB))
	}
	return 1
}

// reportFault prints a fatal fault to stderr. Under verbose it also
// prints the wrapped error chain, one frame per line.
func reportFault(stderr io.Writer, err error, verbose bool) int {
	fmt.Fprintf(stderr, "numdiff: %v\n", err)
	if verbose {
		for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
			fmt.Fprintf(stderr, "  caused by: %v\n", cause)
		}
	}
	return 1
}

// selectTheme picks the render theme; mono whenever color would not be
// welcome on stderr.
func selectTheme(name string, noColor bool, stderr io.Writer) render.Theme {
	if noColor || os.Getenv("NO_COLOR") != "" || !isTTYWriter(stderr) {
		return render.MonoTheme()
	}
	return render.ThemeByName(name)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
