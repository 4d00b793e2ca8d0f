package render

import (
	"encoding/json"
	"io"

	"github.com/spicery/seqlist/pkg/seqlist"
)

func PrintListJSON(list *seqlist.List[string], indentDelta string, output io.Writer, options *Options) {
	encoder := json.NewEncoder(output)
	if indentDelta != "" {
		encoder.SetIndent("", indentDelta)
	}
	encoder.Encode(DocFor(list))
}
