// Command signature_badge generates the gold (unlocked) and gray
// (discovered but locked) signature badge assets. --variant limits the
// run to one of them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/sdfgen"
	"github.com/gogpu/sdfgen/badge"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("signature_badge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		size      = fs.Int("size", badge.DefaultSize, "badge size in pixels")
		outputDir = fs.String("output-dir", ".", "output directory")
		prefix    = fs.String("prefix", "signature_badge", "filename prefix")
		variant   = fs.String("variant", "", "render only this variant (gold or gray)")
		verbose   = fs.Bool("v", false, "log to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *verbose {
		sdfgen.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	variants := badge.Variants
	if *variant != "" {
		v, err := badge.ParseVariant(*variant)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		variants = []badge.Variant{v}
	}

	for _, v := range variants {
		path := badge.Path(*outputDir, *prefix, v)
		if err := badge.Save(path, *size, v); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintf(stdout, "Created %s badge: %s (%dx%d)\n", v, path, *size, *size)
	}

	_, _ = fmt.Fprintf(stdout, "\nDone! Generated %d badge variants at %dx%d\n", len(variants), *size, *size)
	return 0
}
