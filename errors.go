package iobuf

import "errors"

var (
	// ErrAlreadyLocked indicates BeginWrite or BeginRead on a buffer that
	// is already inside a write or read bracket.
	ErrAlreadyLocked = errors.New("iobuf: buffer already locked")

	// ErrNotWriteLocked indicates a write-only operation outside a
	// BeginWrite/EndWrite bracket.
	ErrNotWriteLocked = errors.New("iobuf: operation requires a write lock")

	// ErrNotReadLocked indicates EndRead outside a read bracket.
	ErrNotReadLocked = errors.New("iobuf: operation requires a read lock")

	// ErrNotLocked indicates Segment outside any bracket.
	ErrNotLocked = errors.New("iobuf: operation requires a read or write lock")

	// ErrSegmentRange indicates a Segment index outside [0, NumSegments).
	ErrSegmentRange = errors.New("iobuf: segment index out of range")

	// ErrCommitRange indicates CommitMemory with a negative count or one
	// exceeding the region returned by the preceding GetMemory.
	ErrCommitRange = errors.New("iobuf: commit exceeds reserved region")

	// ErrCapacityExceeded indicates flat growth past MaxBufferSize. The
	// committed bytes are left intact; the caller needs a segmented
	// buffer or a smaller payload.
	ErrCapacityExceeded = errors.New("iobuf: buffer capacity limit exceeded")

	// ErrBadSize indicates a negative byte count request.
	ErrBadSize = errors.New("iobuf: negative size")
)
