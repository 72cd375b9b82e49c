package iobuf

import (
	"testing"

	"github.com/joshuapare/iobuf/alloc"
)

// benchWrite streams total bytes through b in chunk-sized commits, then
// clears so pooled storage recycles across iterations.
func benchWrite(b *testing.B, buf Buffer, total, chunk int) {
	b.Helper()

	payload := make([]byte, chunk)

	b.SetBytes(int64(total))
	b.ResetTimer()
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		if err := buf.BeginWrite(); err != nil {
			b.Fatal(err)
		}
		for written := 0; written < total; written += chunk {
			region, err := buf.GetMemory(chunk)
			if err != nil {
				b.Fatal(err)
			}
			copy(region, payload)
			if err := buf.CommitMemory(chunk); err != nil {
				b.Fatal(err)
			}
		}
		if err := buf.EndWrite(); err != nil {
			b.Fatal(err)
		}
		if err := buf.Clear(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFlatBuffer_Write measures contiguous growth cost with the
// direct allocator.
func BenchmarkFlatBuffer_Write(b *testing.B) {
	benchWrite(b, NewFlat(alloc.Direct{}), 64<<10, 256)
}

// BenchmarkFlatBuffer_WritePooled measures the same stream recycling
// through a pool.
func BenchmarkFlatBuffer_WritePooled(b *testing.B) {
	benchWrite(b, NewFlat(alloc.NewPool()), 64<<10, 256)
}

// BenchmarkSegmentedBuffer_Write measures copy-free segment growth.
func BenchmarkSegmentedBuffer_Write(b *testing.B) {
	benchWrite(b, NewSegmented(alloc.Direct{}, DefaultSegmentSize), 64<<10, 256)
}

// BenchmarkSegmentedBuffer_WritePooled is the pooled variant; segment
// churn should hit the free lists almost exclusively after warmup.
func BenchmarkSegmentedBuffer_WritePooled(b *testing.B) {
	benchWrite(b, NewSegmented(alloc.NewPool(), DefaultSegmentSize), 64<<10, 256)
}
