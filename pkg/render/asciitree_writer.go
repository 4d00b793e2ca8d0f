package render

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/spicery/seqlist/pkg/seqlist"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree converts the list to an asciitree node, one child per item.
func convertToTree(list *seqlist.List[string], options *Options) AsciiNode {
	label := fmt.Sprintf("list (%d items)", list.Len())

	var props []string
	if options != nil && options.IncludeReadOnly {
		props = append(props, fmt.Sprintf("readOnly: %t", list.ReadOnly()))
	}

	var children []AsciiNode
	for i, item := range list.All() {
		trimmedItem := TrimItem(item, trimLength(options))
		children = append(children, AsciiNode{
			Label: fmt.Sprintf("%d: %s", i, trimmedItem),
		})
	}
	return AsciiNode{
		Label:    label,
		Props:    props,
		Children: children,
	}
}

func PrintListAsciiTree(list *seqlist.List[string], indentDelta string, output io.Writer, options *Options) {
	fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(list, options)))
}
