package seqlist

import "errors"

// Error kinds reported by List operations. Operations wrap these with
// context, so callers match them with errors.Is.
var (
	// ErrIndexOutOfRange reports an index outside the valid bounds of the operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrItemNotFound reports a lookup-by-value given an absent item.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidDataType reports a copy or merge source of an unsupported shape.
	ErrInvalidDataType = errors.New("invalid data type")

	// ErrReadOnly reports a mutation attempted on a locked list.
	ErrReadOnly = errors.New("list is read-only")

	// ErrInvalidOperation reports an attempt to set the read-only flag after
	// it has already settled.
	ErrInvalidOperation = errors.New("invalid operation")
)
