package main

import (
	"fmt"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/seqlist/pkg/render"
	"github.com/spicery/seqlist/pkg/seqlist"
)

// Version is injected at build time via ldflags.
var Version = "dev"

func main() {
	// Define command line flags.
	var format = pflag.StringP("format", "f", "JSON", "Output format (JSON, YAML, ASCIITREE, DOT, LINES)")
	var input = pflag.String("in", "json", "Input document format (json or yaml)")
	var readOnly = pflag.Bool("read-only", false, "Lock the merged list before rendering")
	var noReadOnly = pflag.Bool("no-read-only", false, "Suppress read-only information in output")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] FILE...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMerges list documents into a single list.\n")
		fmt.Fprintf(os.Stderr, "The first document is copied into the list, the rest are merged in order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Handle version flag.
	if *version {
		fmt.Printf("seqlist-merge version %s\n", Version)
		os.Exit(0)
	}

	// Handle help flag.
	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	files := pflag.Args()
	if len(files) == 0 {
		pflag.Usage()
		os.Exit(1)
	}

	list := seqlist.New[string]()
	for i, file := range files {
		doc, err := readDocFile(file, *input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			os.Exit(1)
		}
		if i == 0 {
			err = list.CopyFrom(doc.Items)
		} else {
			err = list.MergeWith(doc.Items)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error merging %s: %v\n", file, err)
			os.Exit(1)
		}
	}

	// Merging settles the read-only flag of the working list, so locking
	// the result means taking a locked copy of the final contents.
	if *readOnly {
		list = seqlist.NewReadOnly(list.Items()...)
	}

	// Select the appropriate render function based on format.
	renderFunc := render.PickRenderFunc(*format)

	renderFunc(list, "  ", os.Stdout, &render.Options{
		IncludeReadOnly: !*noReadOnly,
	})
}

func readDocFile(filename string, inputFormat string) (*render.Doc, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch inputFormat {
	case "json":
		return render.ReadDocJSON(f)
	case "yaml":
		return render.ReadDocYAML(f)
	}
	return nil, fmt.Errorf("unknown input format: %s", inputFormat)
}
