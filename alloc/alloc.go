package alloc

// Allocation represents exclusive ownership of a contiguous byte block.
// It is either live (held by exactly one owner) or Empty. The zero value
// is Empty.
//
// An Allocation handed to Deallocate must not be used afterwards; the
// allocator may recycle the storage for an unrelated owner at any time.
type Allocation struct {
	buf    []byte
	mapped bool
}

// Empty is the canonical zero-capacity Allocation. Deallocate resets the
// caller's reference to Empty so stale handles cannot reach freed storage.
var Empty Allocation

// Bytes returns the full-capacity storage slice. Its length equals
// Capacity; committed-byte accounting is the owner's responsibility.
func (a Allocation) Bytes() []byte {
	return a.buf
}

// Capacity returns the usable size of the block in bytes.
func (a Allocation) Capacity() int {
	return len(a.buf)
}

// IsEmpty reports whether the Allocation holds no storage.
func (a Allocation) IsEmpty() bool {
	return a.buf == nil
}

// Allocator produces and reclaims Allocations.
//
// Implementations:
//   - Direct: fresh storage per call, no recycling
//   - Pool: shared size-class recycler, safe for concurrent use
type Allocator interface {
	// Allocate returns an Allocation with capacity >= size. For size 0 it
	// may return Empty. The content of the returned block is undefined.
	Allocate(size int) (Allocation, error)

	// Deallocate returns a's storage to the allocator and sets *a = Empty.
	// Passing the same block twice is a caller error with undefined
	// behavior; resetting the reference makes the accidental form
	// structurally harmless (Empty is always accepted and ignored).
	Deallocate(a *Allocation)
}

// Direct allocates fresh storage of exactly the requested size on every
// call and never recycles. Deallocate only drops the reference; the
// garbage collector reclaims the block once no owner remains.
type Direct struct{}

// Allocate returns a fresh block of exactly size bytes.
func (Direct) Allocate(size int) (Allocation, error) {
	if size < 0 {
		return Empty, ErrBadSize
	}
	if size == 0 {
		return Empty, nil
	}
	return Allocation{buf: make([]byte, size)}, nil
}

// Deallocate resets *a to Empty. No storage is recycled.
func (Direct) Deallocate(a *Allocation) {
	if a == nil {
		return
	}
	*a = Empty
}

var _ Allocator = Direct{}
