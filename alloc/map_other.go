//go:build !linux && !freebsd

package alloc

// mapAlloc falls back to heap storage on platforms without anonymous
// mapping support. The block is GC-managed, so mapFree has nothing to do.
func mapAlloc(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func mapFree([]byte) error {
	return nil
}
