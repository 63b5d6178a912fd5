package collections

import "errors"

// Sentinel errors returned by List and macro operations.
//
// Absence of a value (a failed Get, Find, Remove, …) is never an
// error in this package: those operations return the zero value with
// a false flag instead. Errors are reserved for structural misuse.
var (
	// ErrIndexOutOfRange is returned when an index falls outside the
	// bound permitted by the operation. AddAt accepts indices in
	// [0, Size()]; Update and RemoveAt accept [0, Size()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrEmptyCollection is returned by RemoveFirst / RemoveLast when
	// the list has no items.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrMacroNotFound is returned when an unregistered macro name is
	// called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
