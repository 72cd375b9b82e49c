package iobuf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/iobuf/alloc"
)

// appendBytes writes data to b inside a single write bracket.
func appendBytes(t testing.TB, b Buffer, data []byte) {
	t.Helper()

	require.NoError(t, b.BeginWrite())
	region, err := b.GetMemory(len(data))
	require.NoError(t, err)
	n := copy(region, data)
	require.Equal(t, len(data), n, "GetMemory region must fit the request")
	require.NoError(t, b.CommitMemory(n))
	require.NoError(t, b.EndWrite())
}

// drainBytes reads every segment of b inside a single read bracket and
// returns the concatenation.
func drainBytes(t testing.TB, b Buffer) []byte {
	t.Helper()

	require.NoError(t, b.BeginRead())
	var out []byte
	for i := 0; i < b.NumSegments(); i++ {
		seg, err := b.Segment(i)
		require.NoError(t, err, "Segment(%d) should succeed", i)
		out = append(out, seg...)
	}
	require.NoError(t, b.EndRead())
	return out
}

// patternBytes returns n bytes of a deterministic non-zero pattern seeded
// by seed, so content from different writes is distinguishable.
func patternBytes(seed byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = seed + byte(i*7)
	}
	return out
}

// countingAllocator wraps an Allocator and counts live traffic through it.
type countingAllocator struct {
	inner  alloc.Allocator
	allocs int
	frees  int
}

func (c *countingAllocator) Allocate(size int) (alloc.Allocation, error) {
	a, err := c.inner.Allocate(size)
	if err == nil && !a.IsEmpty() {
		c.allocs++
	}
	return a, err
}

func (c *countingAllocator) Deallocate(a *alloc.Allocation) {
	if a != nil && !a.IsEmpty() {
		c.frees++
	}
	c.inner.Deallocate(a)
}
