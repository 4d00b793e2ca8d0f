package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spicery/seqlist/pkg/render"
)

func main() {
	// Define command line flags.
	var format = flag.String("f", "JSON", "Output format (JSON, YAML, ASCIITREE, DOT, LINES)")
	var formatLong = flag.String("format", "JSON", "Output format (JSON, YAML, ASCIITREE, DOT, LINES)")
	var input = flag.String("in", "json", "Input document format (json or yaml)")
	var trim = flag.Int("trim", 0, "Trim items for display purposes")
	var noReadOnly = flag.Bool("no-read-only", false, "Suppress read-only information in output")

	flag.Parse()

	// Use the long form if provided, otherwise use the short form.
	selectedFormat := *format
	if *formatLong != "JSON" {
		selectedFormat = *formatLong
	}

	// Read the list document from stdin.
	var doc *render.Doc
	var err error
	switch *input {
	case "json":
		doc, err = render.ReadDocJSON(os.Stdin)
	case "yaml":
		doc, err = render.ReadDocYAML(os.Stdin)
	default:
		fmt.Fprintf(os.Stderr, "Unknown input format: %s\n", *input)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	// Select the appropriate render function based on format.
	renderFunc := render.PickRenderFunc(selectedFormat)

	renderFunc(doc.ToList(), "  ", os.Stdout, &render.Options{
		TrimItemOnOutput: *trim,
		IncludeReadOnly:  !*noReadOnly,
	})
}
