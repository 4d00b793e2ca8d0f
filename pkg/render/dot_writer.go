package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/spicery/seqlist/pkg/seqlist"
)

func PrintListDOT(list *seqlist.List[string], indentDelta string, output io.Writer, options *Options) {
	// Initialize the DOT graph
	fmt.Fprintln(output, `digraph G {`)
	fmt.Fprintln(output, `  bgcolor="transparent";`)
	fmt.Fprintln(output, `  node [shape="box", style="filled", fontname="Ubuntu Mono"];`)
	fmt.Fprintln(output, `  rankdir="LR";`)

	// The head node carries the count; items chain off it in list order.
	headID := "list"
	fmt.Fprintf(output, "  \"%s\" [label=\"list (%d items)\", fillcolor=\"lightpink\"];\n", headID, list.Len())

	parentID := headID
	for i, item := range list.All() {
		nodeID := fmt.Sprintf("item_%d", i)
		trimmedItem := TrimItem(item, trimLength(options))
		label := fmt.Sprintf("%d: %s", i, escapeDOTValue(trimmedItem))
		fmt.Fprintf(output, "  \"%s\" [label=\"%s\", fillcolor=\"lightgoldenrodyellow\"];\n", nodeID, label)
		fmt.Fprintf(output, "  \"%s\" -> \"%s\";\n", parentID, nodeID)
		parentID = nodeID
	}

	// Close the graph
	fmt.Fprintln(output, `}`)
}

func escapeDOTValue(value string) string {
	// Escape special characters for DOT format
	return strings.ReplaceAll(value, `"`, `\"`)
}
