package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spicery/seqlist/pkg/seqlist"
)

// RenderFunc writes a list to the output in one concrete format.
type RenderFunc func(*seqlist.List[string], string, io.Writer, *Options)

func PickRenderFunc(format string) RenderFunc {
	switch strings.ToUpper(format) {
	case "JSON":
		return PrintListJSON
	case "YAML":
		return PrintListYAML
	case "ASCIITREE":
		return PrintListAsciiTree
	case "DOT":
		return PrintListDOT
	case "LINES":
		return PrintListLines
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", format)
		os.Exit(1)
		return nil
	}
}

// PrintListLines writes one item per line, for use in shell pipelines.
func PrintListLines(list *seqlist.List[string], indentDelta string, output io.Writer, options *Options) {
	for item := range list.Values() {
		fmt.Fprintln(output, item)
	}
}
