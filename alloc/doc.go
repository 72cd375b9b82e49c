// Package alloc provides byte-block allocation strategies for staging buffers.
//
// # Overview
//
// Buffers in this module do not call make directly. They obtain backing
// storage as Allocation values from an Allocator, and hand every
// Allocation back when cleared. Swapping the allocation strategy is a
// construction-time choice and never touches buffer code.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Allocate(size): Produce an Allocation with capacity >= size
//   - Deallocate(&a): Return an Allocation and reset the reference to Empty
//
// # Implementations
//
// Direct: trivial pass-through allocator
//
//   - Every Allocate creates fresh storage of exactly the requested size
//   - Deallocate discards the reference; the garbage collector reclaims it
//   - Zero shared state, nothing to tune
//
// Pool: shared recycling allocator
//
//   - Power-of-two size classes from 32 B to 64 KiB
//   - Blocks above the largest class are backed by anonymous mmap on
//     linux/freebsd and unmapped eagerly on Deallocate
//   - Bounded number of retained blocks per class, so an allocation burst
//     does not pin memory forever
//   - Safe for concurrent use by independent buffers
//
// # Usage Example
//
//	pool := alloc.NewPool()
//
//	a, err := pool.Allocate(256)
//	if err != nil {
//	    return err
//	}
//
//	// Write into a.Bytes()...
//	copy(a.Bytes(), payload)
//
//	// Later, return the block. a is reset to alloc.Empty.
//	pool.Deallocate(&a)
//
// # Content Of Recycled Blocks
//
// Neither allocator zeroes storage. The content of a fresh Allocation is
// undefined: it may contain bytes written by a previous owner. Callers
// must track how many bytes they have written and never read beyond them.
// Capacity may also exceed the requested size; logical size is the
// caller's concern.
//
// # Thread Safety
//
// Pool is safe for concurrent Allocate/Deallocate from any number of
// goroutines. Individual Allocation values are not shared; each has
// exactly one owner at a time, and using one after Deallocate is a caller
// error.
package alloc
