package iobuf

import "github.com/joshuapare/iobuf/alloc"

// Policy constants bounding buffer growth.
const (
	// MinBufferSize is the smallest capacity a FlatBuffer grows to.
	MinBufferSize = 32

	// MaxBufferSize caps FlatBuffer growth. Exceeding it fails with
	// ErrCapacityExceeded rather than truncating.
	MaxBufferSize = 256 << 20

	// DefaultSegmentSize is the segment capacity used by NewSegmented
	// when the caller passes a non-positive size.
	DefaultSegmentSize = 4096
)

// Buffer is an abstract byte container with a single-writer/single-reader
// bracket discipline. See the package documentation for the write and
// read protocols. Implementations: FlatBuffer, SegmentedBuffer.
type Buffer interface {
	// BeginWrite opens a write bracket. Fails with ErrAlreadyLocked if a
	// bracket of either kind is open.
	BeginWrite() error

	// GetMemory returns a writable region of at least minBytes bytes at
	// the current write position, growing the buffer first if needed.
	// The committed length does not move until CommitMemory.
	GetMemory(minBytes int) ([]byte, error)

	// CommitMemory declares numBytes of the most recent GetMemory region
	// as written, advancing Count. Zero is a no-op; more than the region
	// held out is rejected with ErrCommitRange.
	CommitMemory(numBytes int) error

	// EndWrite closes the write bracket. An uncommitted region is
	// abandoned.
	EndWrite() error

	// BeginRead opens a read bracket. Fails with ErrAlreadyLocked if a
	// bracket of either kind is open.
	BeginRead() error

	// Segment returns the committed bytes of segment index, in write
	// order. Valid inside a read or write bracket. Index 0 is always
	// retrievable; other out-of-range indexes fail with ErrSegmentRange.
	// The capacity of the returned slice is the segment capacity.
	Segment(index int) ([]byte, error)

	// EndRead closes the read bracket.
	EndRead() error

	// Clear returns every owned allocation to the allocator and resets
	// the buffer to empty. It takes the write bracket itself and fails
	// with ErrAlreadyLocked if one is open.
	Clear() error

	// Close releases the buffer's storage. Equivalent to Clear.
	Close() error

	// Count returns the total committed length in bytes. Valid without a
	// bracket; reflects the last completed write.
	Count() int

	// NumSegments returns the number of segments readers will visit.
	// Valid without a bracket.
	NumSegments() int

	// Allocator returns the allocator the buffer was constructed with.
	Allocator() alloc.Allocator
}

type lockState uint8

const (
	lockIdle lockState = iota
	lockWrite
	lockRead
)

// lockGate tracks the bracket state of a buffer. It is a defensive
// single-owner discipline, not a mutex: violations mean a caller bug and
// surface as illegal-state errors immediately.
type lockGate struct {
	state lockState

	// reserved is the size of the region handed out by the last
	// GetMemory in the current write bracket, consumed by CommitMemory.
	reserved int
}

func (g *lockGate) beginWrite() error {
	if g.state != lockIdle {
		return ErrAlreadyLocked
	}
	g.state = lockWrite
	g.reserved = 0
	return nil
}

func (g *lockGate) endWrite() error {
	if g.state != lockWrite {
		return ErrNotWriteLocked
	}
	g.state = lockIdle
	g.reserved = 0
	return nil
}

func (g *lockGate) beginRead() error {
	if g.state != lockIdle {
		return ErrAlreadyLocked
	}
	g.state = lockRead
	return nil
}

func (g *lockGate) endRead() error {
	if g.state != lockRead {
		return ErrNotReadLocked
	}
	g.state = lockIdle
	return nil
}

func (g *lockGate) ensureWrite() error {
	if g.state != lockWrite {
		return ErrNotWriteLocked
	}
	return nil
}

func (g *lockGate) ensureReadOrWrite() error {
	if g.state == lockIdle {
		return ErrNotLocked
	}
	return nil
}
