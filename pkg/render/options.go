package render

// Options controls how a list is rendered.
type Options struct {
	Format           string `yaml:"option-format,omitempty"`
	Indent           int    `yaml:"option-indent,omitempty"`
	IncludeReadOnly  bool   `yaml:"option-include-read-only,omitempty"`
	TrimItemOnOutput int    `yaml:"option-trim-item-on-output,omitempty"`
}

// TrimItem trims an item for display purposes if trimming is enabled
func TrimItem(item string, trimLength int) string {
	if trimLength > 0 && len(item) > trimLength {
		// Reserve space for Unicode ellipsis (1 character: "…")
		if trimLength >= 2 {
			return item[:trimLength-1] + "…"
		}
		// If trim length is too small for ellipsis, just truncate
		return item[:trimLength]
	}
	return item
}

func trimLength(options *Options) int {
	if options == nil {
		return 0
	}
	return options.TrimItemOnOutput
}
