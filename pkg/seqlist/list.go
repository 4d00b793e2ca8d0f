package seqlist

import (
	"fmt"
	"iter"
	"slices"
)

// lockState tracks the read-only flag of a List. The flag starts unset,
// settles to unlocked on the first mutation, and can be fixed exactly once
// from outside the list.
type lockState int

const (
	lockUnset lockState = iota
	lockUnlocked
	lockLocked
)

// List is an ordered sequence of items addressable by zero-based index.
// Items are compared with ==. The zero value is an empty, mutable list.
type List[T comparable] struct {
	items []T
	lock  lockState
}

// New creates a list seeded with the given items. The read-only flag is
// left unset, so it can still be fixed later with SetReadOnly.
func New[T comparable](items ...T) *List[T] {
	l := &List[T]{}
	l.items = append(l.items, items...)
	return l
}

// NewReadOnly creates a list seeded with the given items and locks it
// immediately. The lock counts as the one permitted SetReadOnly call.
func NewReadOnly[T comparable](items ...T) *List[T] {
	l := New(items...)
	l.lock = lockLocked
	return l
}

// FromSeq creates a list seeded from a sequence.
func FromSeq[T comparable](seq iter.Seq[T]) *List[T] {
	return &List[T]{items: slices.Collect(seq)}
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the item at the given zero-based index.
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("index %d out of range for list of %d items: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	return l.items[index], nil
}

// Add appends an item at the end of the list and returns its new index.
func (l *List[T]) Add(item T) (int, error) {
	if err := l.ensureMutable(); err != nil {
		return -1, err
	}
	l.items = append(l.items, item)
	return len(l.items) - 1, nil
}

// InsertAt inserts an item at the given index, shifting the items at and
// after that index one position later. Index may equal Len, which appends.
func (l *List[T]) InsertAt(index int, item T) error {
	if err := l.ensureMutable(); err != nil {
		return err
	}
	if index < 0 || index > len(l.items) {
		return fmt.Errorf("insertion index %d out of range for list of %d items: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	l.items = slices.Insert(l.items, index, item)
	return nil
}

// Remove deletes the first occurrence of an item and returns its former index.
func (l *List[T]) Remove(item T) (int, error) {
	index := l.IndexOf(item)
	if index < 0 {
		return -1, fmt.Errorf("item not in list: %w", ErrItemNotFound)
	}
	if _, err := l.RemoveAt(index); err != nil {
		return -1, err
	}
	return index, nil
}

// RemoveAt deletes and returns the item at the given index, shifting the
// items after it one position earlier.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := l.ensureMutable(); err != nil {
		return zero, err
	}
	if index < 0 || index >= len(l.items) {
		return zero, fmt.Errorf("index %d out of range for list of %d items: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	item := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return item, nil
}

// Clear removes every item from the list.
func (l *List[T]) Clear() error {
	if err := l.ensureMutable(); err != nil {
		return err
	}
	l.items = l.items[:0]
	return nil
}

// Contains reports whether the item occurs in the list.
func (l *List[T]) Contains(item T) bool {
	return slices.Contains(l.items, item)
}

// IndexOf returns the first index of an item, or -1 if it is absent.
func (l *List[T]) IndexOf(item T) int {
	return slices.Index(l.items, item)
}

// InsertBefore inserts an item immediately before the first occurrence of
// base and returns the insertion index.
func (l *List[T]) InsertBefore(base, item T) (int, error) {
	if err := l.ensureMutable(); err != nil {
		return -1, err
	}
	index := l.IndexOf(base)
	if index < 0 {
		return -1, fmt.Errorf("base item not in list: %w", ErrItemNotFound)
	}
	l.items = slices.Insert(l.items, index, item)
	return index, nil
}

// InsertAfter inserts an item immediately after the first occurrence of
// base and returns the insertion index.
func (l *List[T]) InsertAfter(base, item T) (int, error) {
	if err := l.ensureMutable(); err != nil {
		return -1, err
	}
	index := l.IndexOf(base)
	if index < 0 {
		return -1, fmt.Errorf("base item not in list: %w", ErrItemNotFound)
	}
	l.items = slices.Insert(l.items, index+1, item)
	return index + 1, nil
}

// Items returns a snapshot copy of the current contents.
func (l *List[T]) Items() []T {
	items := make([]T, len(l.items))
	copy(items, l.items)
	return items
}

// SetAt assigns an item at the given index. An index equal to Len appends;
// a valid existing index replaces the item in place.
func (l *List[T]) SetAt(index int, item T) error {
	if err := l.ensureMutable(); err != nil {
		return err
	}
	switch {
	case index == len(l.items):
		l.items = append(l.items, item)
	case index >= 0 && index < len(l.items):
		l.items[index] = item
	default:
		return fmt.Errorf("assignment index %d out of range for list of %d items: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	return nil
}

// HasIndex reports whether the index addresses an existing item.
func (l *List[T]) HasIndex(index int) bool {
	return index >= 0 && index < len(l.items)
}

// CopyFrom replaces the contents of the list with the items of src.
// src may be nil, a []T, a *List[T] or an iter.Seq[T].
func (l *List[T]) CopyFrom(src any) error {
	data, err := collect[T](src)
	if err != nil {
		return err
	}
	if err := l.ensureMutable(); err != nil {
		return err
	}
	l.items = l.items[:0]
	l.items = append(l.items, data...)
	return nil
}

// MergeWith appends the items of src to the list. src accepts the same
// shapes as CopyFrom.
func (l *List[T]) MergeWith(src any) error {
	data, err := collect[T](src)
	if err != nil {
		return err
	}
	if err := l.ensureMutable(); err != nil {
		return err
	}
	l.items = append(l.items, data...)
	return nil
}

func collect[T comparable](src any) ([]T, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []T:
		return v, nil
	case *List[T]:
		if v == nil {
			return nil, nil
		}
		return v.Items(), nil
	case iter.Seq[T]:
		return slices.Collect(v), nil
	case func(func(T) bool):
		return slices.Collect(iter.Seq[T](v)), nil
	default:
		return nil, fmt.Errorf("cannot collect items from %T: %w", src, ErrInvalidDataType)
	}
}

// SetReadOnly fixes the read-only flag. The flag can be set exactly once;
// it also settles on the first mutation, after which SetReadOnly fails
// with ErrInvalidOperation.
func (l *List[T]) SetReadOnly(readOnly bool) error {
	if l.lock != lockUnset {
		return fmt.Errorf("read-only flag is already settled: %w", ErrInvalidOperation)
	}
	if readOnly {
		l.lock = lockLocked
	} else {
		l.lock = lockUnlocked
	}
	return nil
}

// ReadOnly reports whether the list is locked against mutation.
func (l *List[T]) ReadOnly() bool {
	return l.lock == lockLocked
}

// ensureMutable settles an unset read-only flag to unlocked, then rejects
// the mutation if the list is locked.
func (l *List[T]) ensureMutable() error {
	if l.lock == lockUnset {
		l.lock = lockUnlocked
	}
	if l.lock == lockLocked {
		return fmt.Errorf("cannot modify the list: %w", ErrReadOnly)
	}
	return nil
}

// All returns an index/item sequence over the current contents. Each call
// starts a fresh pass.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns an item sequence in list order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}
