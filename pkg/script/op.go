package script

import (
	"github.com/spicery/seqlist/pkg/seqlist"
)

// Op is a single scripted operation applied to a list.
type Op interface {
	Apply(list *seqlist.List[string]) error
}

////////////////////////////////////////////////////////////////////////////////
/// Ops
////////////////////////////////////////////////////////////////////////////////

type AddOp struct {
	Item string
}

func (o *AddOp) Apply(list *seqlist.List[string]) error {
	_, err := list.Add(o.Item)
	return err
}

type InsertAtOp struct {
	Index int
	Item  string
}

func (o *InsertAtOp) Apply(list *seqlist.List[string]) error {
	return list.InsertAt(o.Index, o.Item)
}

type InsertBeforeOp struct {
	Base string
	Item string
}

func (o *InsertBeforeOp) Apply(list *seqlist.List[string]) error {
	_, err := list.InsertBefore(o.Base, o.Item)
	return err
}

type InsertAfterOp struct {
	Base string
	Item string
}

func (o *InsertAfterOp) Apply(list *seqlist.List[string]) error {
	_, err := list.InsertAfter(o.Base, o.Item)
	return err
}

type RemoveOp struct {
	Item string
}

func (o *RemoveOp) Apply(list *seqlist.List[string]) error {
	_, err := list.Remove(o.Item)
	return err
}

type RemoveAtOp struct {
	Index int
}

func (o *RemoveAtOp) Apply(list *seqlist.List[string]) error {
	_, err := list.RemoveAt(o.Index)
	return err
}

type SetAtOp struct {
	Index int
	Item  string
}

func (o *SetAtOp) Apply(list *seqlist.List[string]) error {
	return list.SetAt(o.Index, o.Item)
}

type ClearOp struct{}

func (o *ClearOp) Apply(list *seqlist.List[string]) error {
	return list.Clear()
}

type CopyFromOp struct {
	Items []string
}

func (o *CopyFromOp) Apply(list *seqlist.List[string]) error {
	return list.CopyFrom(o.Items)
}

type MergeWithOp struct {
	Items []string
}

func (o *MergeWithOp) Apply(list *seqlist.List[string]) error {
	return list.MergeWith(o.Items)
}

type SetReadOnlyOp struct {
	Value bool
}

func (o *SetReadOnlyOp) Apply(list *seqlist.List[string]) error {
	return list.SetReadOnly(o.Value)
}
