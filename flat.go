package iobuf

import (
	"github.com/joshuapare/iobuf/alloc"
	"github.com/joshuapare/iobuf/internal/ioalign"
)

// FlatBuffer stores all committed bytes in one contiguous allocation and
// grows by reallocating to the next power of two, copying committed bytes
// across. Growth is bounded by MaxBufferSize. Readers always see exactly
// one segment.
type FlatBuffer struct {
	gate  lockGate
	alloc alloc.Allocator
	store alloc.Allocation
	count int

	// maxCapacity is MaxBufferSize in production; tests lower it to
	// exercise the growth bound without allocating hundreds of MiB.
	maxCapacity int
}

// NewFlat creates an empty FlatBuffer drawing storage from a. No storage
// is allocated until the first GetMemory.
func NewFlat(a alloc.Allocator) *FlatBuffer {
	return &FlatBuffer{alloc: a, maxCapacity: MaxBufferSize}
}

// BeginWrite opens a write bracket.
func (b *FlatBuffer) BeginWrite() error { return b.gate.beginWrite() }

// EndWrite closes the write bracket.
func (b *FlatBuffer) EndWrite() error { return b.gate.endWrite() }

// BeginRead opens a read bracket.
func (b *FlatBuffer) BeginRead() error { return b.gate.beginRead() }

// EndRead closes the read bracket.
func (b *FlatBuffer) EndRead() error { return b.gate.endRead() }

// GetMemory returns a writable region of at least minBytes bytes starting
// at the committed offset, growing the allocation first when the
// remaining capacity is short.
func (b *FlatBuffer) GetMemory(minBytes int) ([]byte, error) {
	if err := b.gate.ensureWrite(); err != nil {
		return nil, err
	}
	if minBytes < 0 {
		return nil, ErrBadSize
	}
	if b.store.Capacity()-b.count < minBytes {
		if err := b.grow(minBytes); err != nil {
			return nil, err
		}
	}
	region := b.store.Bytes()[b.count:]
	b.gate.reserved = len(region)
	return region, nil
}

// grow swaps in an allocation of the next power of two covering the
// committed bytes plus minBytes, preserving committed content. The old
// allocation goes back to the allocator only after the copy.
func (b *FlatBuffer) grow(minBytes int) error {
	required, ok := ioalign.AddNoOverflow(b.count, minBytes)
	if !ok {
		return ErrCapacityExceeded
	}
	newCap := ioalign.NextPow2(max(required, MinBufferSize))
	if newCap == 0 || newCap > b.maxCapacity {
		return ErrCapacityExceeded
	}
	fresh, err := b.alloc.Allocate(newCap)
	if err != nil {
		return err
	}
	copy(fresh.Bytes(), b.store.Bytes()[:b.count])
	b.alloc.Deallocate(&b.store)
	b.store = fresh
	return nil
}

// CommitMemory advances the committed length by numBytes of the most
// recent GetMemory region.
func (b *FlatBuffer) CommitMemory(numBytes int) error {
	if err := b.gate.ensureWrite(); err != nil {
		return err
	}
	if numBytes == 0 {
		return nil
	}
	if numBytes < 0 || numBytes > b.gate.reserved {
		return ErrCommitRange
	}
	b.count += numBytes
	b.gate.reserved = 0
	return nil
}

// Segment returns the committed bytes. A FlatBuffer has exactly one
// segment, so only index 0 is valid.
func (b *FlatBuffer) Segment(index int) ([]byte, error) {
	if err := b.gate.ensureReadOrWrite(); err != nil {
		return nil, err
	}
	if index != 0 {
		return nil, ErrSegmentRange
	}
	return b.store.Bytes()[:b.count], nil
}

// Clear returns the allocation to the allocator and resets the buffer.
func (b *FlatBuffer) Clear() error {
	if err := b.gate.beginWrite(); err != nil {
		return err
	}
	b.alloc.Deallocate(&b.store)
	b.count = 0
	return b.gate.endWrite()
}

// Close releases the buffer's storage.
func (b *FlatBuffer) Close() error { return b.Clear() }

// Count returns the committed length in bytes.
func (b *FlatBuffer) Count() int { return b.count }

// NumSegments returns 1; flat storage is always a single segment.
func (b *FlatBuffer) NumSegments() int { return 1 }

// Allocator returns the allocator the buffer draws from.
func (b *FlatBuffer) Allocator() alloc.Allocator { return b.alloc }

var _ Buffer = (*FlatBuffer)(nil)
