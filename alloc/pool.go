package alloc

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/joshuapare/iobuf/internal/ioalign"
)

const (
	// MinBlockSize is the smallest block the pool hands out. Requests
	// below it are rounded up so tiny allocations still land in a class.
	MinBlockSize = 32

	// MaxBlockSize is the capacity of the largest size class. Requests
	// above it bypass the free lists and are mapped (or heap-allocated on
	// platforms without anonymous mapping support).
	MaxBlockSize = 64 << 10

	// maxRetainedPerClass bounds how many free blocks each class keeps.
	// Blocks returned beyond the bound are dropped for the garbage
	// collector, so a burst of buffer churn does not pin memory forever.
	maxRetainedPerClass = 32
)

// numClasses covers powers of two from MinBlockSize through MaxBlockSize.
const numClasses = 12

// classIndex returns the free-list index for a block request of the given
// size. Callers guarantee 0 < size <= MaxBlockSize.
func classIndex(size int) int {
	if size <= MinBlockSize {
		return 0
	}
	// bits.Len(n-1) is log2 rounded up for n > 1.
	return bits.Len(uint(size-1)) - 5
}

// classSize returns the block capacity of class i.
func classSize(i int) int {
	return MinBlockSize << i
}

// Pool is a shared recycling allocator. Blocks are segregated into
// power-of-two size classes; Allocate pops from the matching free list
// and Deallocate pushes back, so unrelated buffers recycle each other's
// storage. All methods are safe for concurrent use.
//
// Returned blocks are never zeroed. See the package documentation.
type Pool struct {
	mu      sync.Mutex
	classes [numClasses][]Allocation
}

// NewPool creates an empty Pool. The pool holds no storage until blocks
// are returned to it.
func NewPool() *Pool {
	return &Pool{}
}

// DefaultPool is a process-wide pool for callers that do not need an
// isolated recycling domain. Buffers sharing it recycle blocks across
// otherwise unrelated parts of the process.
var DefaultPool = NewPool()

// Allocate returns a block with capacity >= size. Within the class range
// the capacity is the class size, so it commonly exceeds the request;
// callers must track their own logical length. The block's content is
// undefined.
func (p *Pool) Allocate(size int) (Allocation, error) {
	if size < 0 {
		return Empty, ErrBadSize
	}
	if size == 0 {
		return Empty, nil
	}
	if size > MaxBlockSize {
		return p.allocateLarge(size)
	}

	idx := classIndex(size)

	p.mu.Lock()
	free := p.classes[idx]
	if n := len(free); n > 0 {
		a := free[n-1]
		free[n-1] = Empty
		p.classes[idx] = free[:n-1]
		p.mu.Unlock()
		return a, nil
	}
	p.mu.Unlock()

	return Allocation{buf: make([]byte, classSize(idx))}, nil
}

// allocateLarge backs oversized requests with an anonymous mapping where
// the platform supports it. Mapped blocks are page-rounded, so capacity
// may exceed the request here as well.
func (p *Pool) allocateLarge(size int) (Allocation, error) {
	buf, mapped, err := mapAlloc(size)
	if err != nil {
		return Empty, fmt.Errorf("%w: %d bytes: %v", ErrMapFailed, size, err)
	}
	return Allocation{buf: buf, mapped: mapped}, nil
}

// Deallocate returns a's storage to the pool and resets *a to Empty.
// Mapped blocks are unmapped immediately; class-sized blocks go back on
// their free list unless the class is already at its retention bound.
func (p *Pool) Deallocate(a *Allocation) {
	if a == nil {
		return
	}
	block := *a
	*a = Empty
	if block.IsEmpty() {
		return
	}

	if block.mapped {
		// The block is gone either way; an unmap error leaves nothing
		// actionable for the caller.
		_ = mapFree(block.buf)
		return
	}

	size := block.Capacity()
	if size < MinBlockSize || size > MaxBlockSize || !ioalign.IsPow2(size) {
		// Foreign or oversized heap block; let the GC take it.
		return
	}

	idx := classIndex(size)

	p.mu.Lock()
	if len(p.classes[idx]) < maxRetainedPerClass {
		p.classes[idx] = append(p.classes[idx], block)
	}
	p.mu.Unlock()
}

var _ Allocator = (*Pool)(nil)
