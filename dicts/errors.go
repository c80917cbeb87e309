package dicts

import "errors"

// Sentinel errors returned by strict nested lookups and macros.
var (
	// ErrKeyNotFound is returned by GetInStrict when a mapping level does
	// not contain the requested key.
	ErrKeyNotFound = errors.New("dicts: key not found")

	// ErrIndexOutOfRange is returned by GetInStrict when a sequence level
	// is indexed outside its bounds.
	ErrIndexOutOfRange = errors.New("dicts: sequence index out of range")

	// ErrNotIndexable is returned by GetInStrict when a path segment
	// addresses a value that is neither a mapping nor a sequence, or when
	// the segment's type cannot index the level (e.g. a non-string key on
	// a map[string]any, a non-integer index on a []any).
	ErrNotIndexable = errors.New("dicts: value is not indexable by path segment")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("dicts: macro not found")
)
