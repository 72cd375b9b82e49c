// Package iobuf provides staging byte buffers for serialized payloads.
//
// # Overview
//
// A Buffer is a resizable byte container that an encoder writes into and
// a decoder later drains, in order. The package does not define or
// inspect any payload format: bytes go in through the write protocol and
// come back out unchanged through segment iteration. Two strategies
// implement the contract:
//
//   - FlatBuffer: one contiguous block with power-of-two doubling growth.
//     Use it when a consumer needs a single flat view of the payload,
//     e.g. handing a complete message to a socket or file write.
//   - SegmentedBuffer: a chain of fixed-capacity blocks. Growth never
//     copies committed bytes, at the cost of a non-contiguous result.
//     Use it when the consumer can iterate chunks.
//
// Backing storage comes from an allocator chosen at construction (see
// the alloc subpackage), so pooled and direct allocation are
// interchangeable without touching buffer callers.
//
// # Write Protocol
//
//	buf := iobuf.NewFlat(alloc.DefaultPool)
//
//	if err := buf.BeginWrite(); err != nil {
//	    return err
//	}
//	region, err := buf.GetMemory(len(payload))
//	if err != nil {
//	    return err
//	}
//	n := copy(region, payload)
//	if err := buf.CommitMemory(n); err != nil {
//	    return err
//	}
//	if err := buf.EndWrite(); err != nil {
//	    return err
//	}
//
// GetMemory hands out at least the requested number of bytes at the
// current write position; CommitMemory declares how many of them are
// meaningful. Only committed bytes exist as far as readers are concerned.
// A region that is never committed is simply abandoned.
//
// # Read Protocol
//
//	if err := buf.BeginRead(); err != nil {
//	    return err
//	}
//	for i := range buf.NumSegments() {
//	    seg, err := buf.Segment(i)
//	    if err != nil {
//	        return err
//	    }
//	    out = append(out, seg...)
//	}
//	if err := buf.EndRead(); err != nil {
//	    return err
//	}
//
// Segments are visited in write order; concatenating them reproduces the
// committed bytes exactly. Segment(0) is always retrievable, even on a
// buffer that has never been written to.
//
// # Locking Discipline
//
// BeginWrite/EndWrite and BeginRead/EndRead bracket a single logical
// operation. The brackets are mutually exclusive and non-reentrant, and
// the lock state is a plain field, not a mutex: it exists to catch
// programming mistakes (GetMemory without BeginWrite, overlapping
// brackets), not to serialize racing goroutines. A Buffer instance
// supports one active writer or one active reader; sharing an instance
// across goroutines requires external synchronization. The shared state
// inside a Pool allocator, by contrast, is internally synchronized.
package iobuf
