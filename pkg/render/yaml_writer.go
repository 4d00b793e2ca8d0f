package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/spicery/seqlist/pkg/seqlist"
)

func PrintListYAML(list *seqlist.List[string], indentDelta string, output io.Writer, options *Options) {
	encoder := yaml.NewEncoder(output)
	if options != nil && options.Indent > 0 {
		encoder.SetIndent(options.Indent)
	}
	encoder.Encode(DocFor(list))
	encoder.Close()
}
