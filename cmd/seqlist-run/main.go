package main

import (
	"fmt"
	"io"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/seqlist/pkg/render"
	"github.com/spicery/seqlist/pkg/script"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = "JSON"

func main() {
	// Define command line flags.
	var scriptPath = pflag.StringP("script", "s", "", "Script file to execute (defaults to stdin)")
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format (JSON, YAML, ASCIITREE, DOT, LINES)")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var trim = pflag.Int("trim", 0, "Trim items for display purposes")
	var noReadOnly = pflag.Bool("no-read-only", false, "Suppress read-only information in output")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExecutes a list script and renders the resulting list.\n")
		fmt.Fprintf(os.Stderr, "Reads the script from --script or stdin and writes the list to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Handle version flag.
	if *version {
		fmt.Printf("seqlist-run version %s\n", Version)
		os.Exit(0)
	}

	// Handle help flag.
	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	// Load the script from the named file or stdin.
	var s *script.Script
	var err error
	if *scriptPath != "" {
		s, err = script.LoadScript(*scriptPath)
	} else {
		var data []byte
		data, err = io.ReadAll(os.Stdin)
		if err == nil {
			s, err = script.LoadScriptFromString(string(data))
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		os.Exit(1)
	}

	// Execute the script against a fresh list.
	list, err := script.Run(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
		os.Exit(1)
	}

	// Select the appropriate render function based on format.
	renderFunc := render.PickRenderFunc(*format)

	// Create indent string based on indent level.
	indentStr := ""
	for i := 0; i < *indent; i++ {
		indentStr += " "
	}

	// Render the list in the selected format.
	renderFunc(list, indentStr, os.Stdout, &render.Options{
		Format:           *format,
		Indent:           *indent,
		IncludeReadOnly:  !*noReadOnly,
		TrimItemOnOutput: *trim,
	})
}
