// Command to_white converts every non-transparent pixel of a PNG to white,
// keeping the alpha channel.
//
// Usage:
//
//	to_white <input.png> <output.png>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/sdfgen/whiten"
)

const usage = "Usage: to_white <input.png> <output.png>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("to_white", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { _, _ = fmt.Fprintln(stdout, usage) }
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		_, _ = fmt.Fprintln(stdout, usage)
		return 1
	}

	if err := whiten.File(fs.Arg(0), fs.Arg(1)); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Image saved to %s\n", fs.Arg(1))
	return 0
}
