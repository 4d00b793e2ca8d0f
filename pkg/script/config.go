package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script represents the top-level script structure
type Script struct {
	Name        string     `yaml:"name,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Seed        []string   `yaml:"seed,omitempty"`
	ReadOnly    *bool      `yaml:"readOnly,omitempty"`
	Ops         []OpConfig `yaml:"ops"`
}

// OpConfig describes one scripted operation
// This is used for YAML unmarshaling and then converted to concrete Op implementations
type OpConfig struct {
	Add          *string          `yaml:"add,omitempty"`
	InsertAt     *IndexItemConfig `yaml:"insertAt,omitempty"`
	InsertBefore *BaseItemConfig  `yaml:"insertBefore,omitempty"`
	InsertAfter  *BaseItemConfig  `yaml:"insertAfter,omitempty"`
	Remove       *string          `yaml:"remove,omitempty"`
	RemoveAt     *int             `yaml:"removeAt,omitempty"`
	SetAt        *IndexItemConfig `yaml:"setAt,omitempty"`
	Clear        bool             `yaml:"clear,omitempty"`
	CopyFrom     []string         `yaml:"copyFrom,omitempty"`
	MergeWith    []string         `yaml:"mergeWith,omitempty"`
	SetReadOnly  *bool            `yaml:"setReadOnly,omitempty"`
}

// IndexItemConfig pairs an index with an item for positional operations.
type IndexItemConfig struct {
	Index int    `yaml:"index"`
	Item  string `yaml:"item"`
}

// BaseItemConfig pairs an existing base item with the item to insert.
type BaseItemConfig struct {
	Base string `yaml:"base"`
	Item string `yaml:"item"`
}

func (oc OpConfig) Validate() error {
	// Operations are mutually exclusive; only one should be set.
	count := 0
	if oc.Add != nil {
		count++
	}
	if oc.InsertAt != nil {
		count++
	}
	if oc.InsertBefore != nil {
		count++
	}
	if oc.InsertAfter != nil {
		count++
	}
	if oc.Remove != nil {
		count++
	}
	if oc.RemoveAt != nil {
		count++
	}
	if oc.SetAt != nil {
		count++
	}
	if oc.Clear {
		count++
	}
	if len(oc.CopyFrom) > 0 {
		count++
	}
	if len(oc.MergeWith) > 0 {
		count++
	}
	if oc.SetReadOnly != nil {
		count++
	}
	if count == 0 {
		return fmt.Errorf("no operation specified in OpConfig: %+v", oc)
	}
	if count > 1 {
		return fmt.Errorf("multiple operations specified in OpConfig; only one allowed: %+v", oc)
	}
	return nil
}

// ToOp converts an OpConfig to a concrete Op implementation
func (oc OpConfig) ToOp() (Op, error) {
	// Validate the op config first
	if err := oc.Validate(); err != nil {
		return nil, err
	}
	// Determine which operation is specified and create the corresponding Op
	if oc.Add != nil {
		return &AddOp{Item: *oc.Add}, nil
	}
	if oc.InsertAt != nil {
		return &InsertAtOp{Index: oc.InsertAt.Index, Item: oc.InsertAt.Item}, nil
	}
	if oc.InsertBefore != nil {
		return &InsertBeforeOp{Base: oc.InsertBefore.Base, Item: oc.InsertBefore.Item}, nil
	}
	if oc.InsertAfter != nil {
		return &InsertAfterOp{Base: oc.InsertAfter.Base, Item: oc.InsertAfter.Item}, nil
	}
	if oc.Remove != nil {
		return &RemoveOp{Item: *oc.Remove}, nil
	}
	if oc.RemoveAt != nil {
		return &RemoveAtOp{Index: *oc.RemoveAt}, nil
	}
	if oc.SetAt != nil {
		return &SetAtOp{Index: oc.SetAt.Index, Item: oc.SetAt.Item}, nil
	}
	if oc.Clear {
		return &ClearOp{}, nil
	}
	if len(oc.CopyFrom) > 0 {
		return &CopyFromOp{Items: oc.CopyFrom}, nil
	}
	if len(oc.MergeWith) > 0 {
		return &MergeWithOp{Items: oc.MergeWith}, nil
	}
	if oc.SetReadOnly != nil {
		return &SetReadOnlyOp{Value: *oc.SetReadOnly}, nil
	}
	// Future operations can be handled here
	return nil, fmt.Errorf("no valid operation found in OpConfig: %+v", oc)
}

// LoadScript loads a script from a YAML file
func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var s Script
	err = yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadScriptFromString loads a Script from a YAML string.
func LoadScriptFromString(yamlContent string) (*Script, error) {
	var s Script
	err := yaml.Unmarshal([]byte(yamlContent), &s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
