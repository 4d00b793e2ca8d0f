package script

import (
	"fmt"

	"github.com/spicery/seqlist/pkg/seqlist"
)

// Run executes the script against a fresh list and returns the result.
// The seed items are applied first; a readOnly setting in the script locks
// or unlocks the list at construction, before any ops run.
func Run(s *Script) (*seqlist.List[string], error) {
	list := seqlist.New(s.Seed...)
	if s.ReadOnly != nil {
		if err := list.SetReadOnly(*s.ReadOnly); err != nil {
			return nil, fmt.Errorf("failed to apply script read-only setting: %w", err)
		}
	}
	if err := Apply(s.Ops, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Apply runs each op config against the list in order.
func Apply(ops []OpConfig, list *seqlist.List[string]) error {
	for i, oc := range ops {
		op, err := oc.ToOp()
		if err != nil {
			return fmt.Errorf("invalid op at position %d: %w", i, err)
		}
		if err := op.Apply(list); err != nil {
			return fmt.Errorf("op at position %d failed: %w", i, err)
		}
	}
	return nil
}
