package iobuf

import "github.com/joshuapare/iobuf/alloc"

// segment is one allocation plus the number of committed bytes within it.
type segment struct {
	store alloc.Allocation
	count int
}

// remaining returns the uncommitted capacity at the tail of the segment.
func (s *segment) remaining() int {
	return s.store.Capacity() - s.count
}

// SegmentedBuffer appends fixed-capacity segments as it fills. Committed
// bytes are never copied between segments, so growth is O(1) regardless
// of how much has been written; the trade-off is that readers iterate a
// chain of chunks instead of one contiguous block.
type SegmentedBuffer struct {
	gate        lockGate
	alloc       alloc.Allocator
	segmentSize int
	segs        []segment
	total       int
}

// NewSegmented creates an empty SegmentedBuffer drawing storage from a.
// segmentSize governs the minimum capacity of each new segment; a
// non-positive value selects DefaultSegmentSize. No storage is allocated
// until the first GetMemory.
func NewSegmented(a alloc.Allocator, segmentSize int) *SegmentedBuffer {
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	return &SegmentedBuffer{alloc: a, segmentSize: segmentSize}
}

// BeginWrite opens a write bracket.
func (b *SegmentedBuffer) BeginWrite() error { return b.gate.beginWrite() }

// EndWrite closes the write bracket.
func (b *SegmentedBuffer) EndWrite() error { return b.gate.endWrite() }

// BeginRead opens a read bracket.
func (b *SegmentedBuffer) BeginRead() error { return b.gate.beginRead() }

// EndRead closes the read bracket.
func (b *SegmentedBuffer) EndRead() error { return b.gate.endRead() }

// GetMemory returns a writable region of at least minBytes bytes in the
// active segment, appending a new segment of max(minBytes, segmentSize)
// when the active one lacks room. Previously committed segments are never
// touched.
func (b *SegmentedBuffer) GetMemory(minBytes int) ([]byte, error) {
	if err := b.gate.ensureWrite(); err != nil {
		return nil, err
	}
	if minBytes < 0 {
		return nil, ErrBadSize
	}
	if len(b.segs) == 0 || b.segs[len(b.segs)-1].remaining() < minBytes {
		store, err := b.alloc.Allocate(max(minBytes, b.segmentSize))
		if err != nil {
			return nil, err
		}
		b.segs = append(b.segs, segment{store: store})
	}
	active := &b.segs[len(b.segs)-1]
	region := active.store.Bytes()[active.count:]
	b.gate.reserved = len(region)
	return region, nil
}

// CommitMemory advances the active segment and the buffer total by
// numBytes of the most recent GetMemory region.
func (b *SegmentedBuffer) CommitMemory(numBytes int) error {
	if err := b.gate.ensureWrite(); err != nil {
		return err
	}
	if numBytes == 0 {
		return nil
	}
	if numBytes < 0 || numBytes > b.gate.reserved {
		return ErrCommitRange
	}
	// reserved > 0 implies GetMemory ran in this bracket, so a segment
	// exists.
	b.segs[len(b.segs)-1].count += numBytes
	b.total += numBytes
	b.gate.reserved = 0
	return nil
}

// Segment returns the committed bytes of segment index, in write order.
// On a never-written buffer, index 0 lazily materializes an empty segment
// so readers are never faced with zero segments.
func (b *SegmentedBuffer) Segment(index int) ([]byte, error) {
	if err := b.gate.ensureReadOrWrite(); err != nil {
		return nil, err
	}
	if index == 0 && len(b.segs) == 0 {
		b.segs = append(b.segs, segment{})
	}
	if index < 0 || index >= len(b.segs) {
		return nil, ErrSegmentRange
	}
	s := &b.segs[index]
	return s.store.Bytes()[:s.count], nil
}

// Clear returns every segment's allocation to the allocator and resets
// the buffer.
func (b *SegmentedBuffer) Clear() error {
	if err := b.gate.beginWrite(); err != nil {
		return err
	}
	for i := range b.segs {
		b.alloc.Deallocate(&b.segs[i].store)
	}
	b.segs = nil
	b.total = 0
	return b.gate.endWrite()
}

// Close releases the buffer's storage.
func (b *SegmentedBuffer) Close() error { return b.Clear() }

// Count returns the total committed length across all segments.
func (b *SegmentedBuffer) Count() int { return b.total }

// NumSegments returns the number of segments readers will visit.
func (b *SegmentedBuffer) NumSegments() int { return len(b.segs) }

// Allocator returns the allocator the buffer draws from.
func (b *SegmentedBuffer) Allocator() alloc.Allocator { return b.alloc }

var _ Buffer = (*SegmentedBuffer)(nil)
