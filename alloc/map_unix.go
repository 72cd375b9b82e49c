//go:build linux || freebsd

package alloc

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/iobuf/internal/ioalign"
)

// mapAlloc backs a large block with an anonymous private mapping. The
// mapping is rounded up to a whole number of pages, so the returned slice
// may be larger than requested.
func mapAlloc(size int) ([]byte, bool, error) {
	n := ioalign.PageCeil(size, os.Getpagesize())
	if n == 0 {
		return nil, false, unix.EINVAL
	}
	buf, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, false, err
	}
	return buf, true, nil
}

// mapFree releases a block obtained from mapAlloc.
func mapFree(buf []byte) error {
	return unix.Munmap(buf)
}
