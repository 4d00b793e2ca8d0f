package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/spicery/seqlist/pkg/seqlist"
)

// Doc is the interchange document for list contents.
type Doc struct {
	Items    []string `json:"items" yaml:"items"`
	ReadOnly bool     `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

// ReadDocJSON reads a list document in JSON form.
func ReadDocJSON(input io.Reader) (*Doc, error) {
	var doc Doc
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadDocYAML reads a list document in YAML form.
func ReadDocYAML(input io.Reader) (*Doc, error) {
	var doc Doc
	decoder := yaml.NewDecoder(input)
	err := decoder.Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ToList builds a list from the document, locking it when readOnly is set.
func (d *Doc) ToList() *seqlist.List[string] {
	if d.ReadOnly {
		return seqlist.NewReadOnly(d.Items...)
	}
	return seqlist.New(d.Items...)
}

// DocFor captures a snapshot document of the list.
func DocFor(list *seqlist.List[string]) *Doc {
	return &Doc{
		Items:    list.Items(),
		ReadOnly: list.ReadOnly(),
	}
}
