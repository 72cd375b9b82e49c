package alloc

import "errors"

var (
	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("alloc: negative allocation size")

	// ErrMapFailed indicates the operating system refused an anonymous
	// mapping for a large block. Wrapped around the underlying error.
	ErrMapFailed = errors.New("alloc: anonymous mapping failed")
)
