// Command generate_sdf converts the alpha mask of an image into a signed
// distance field and writes it next to the input as <name>_sdf.png.
//
// Usage:
//
//	generate_sdf [-v] [--] <input.png>
//
// Flags must come before the input path. Use -- when the path itself
// starts with a dash.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/sdfgen"
)

const usage = "Usage: generate_sdf [-v] [--] <input.png>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("generate_sdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { _, _ = fmt.Fprintln(stdout, usage) }
	verbose := fs.Bool("v", false, "log pipeline stages to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 1 {
		_, _ = fmt.Fprintln(stdout, usage)
		return 1
	}

	if *verbose {
		sdfgen.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	res, err := sdfgen.Generate(fs.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	printSummary(stdout, res)
	return 0
}

func printSummary(w io.Writer, res *sdfgen.Result) {
	_, _ = fmt.Fprintf(w, "✓ SDF generated: %s\n", res.OutputPath)
	_, _ = fmt.Fprintf(w, "  Input: %s\n", res.InputPath)
	_, _ = fmt.Fprintf(w, "  SDF range (pixels): [%d, %d]\n", int(res.Min), int(res.Max))
	_, _ = fmt.Fprintf(w, "  Image size: %dx%d\n", res.Width, res.Height)
}
