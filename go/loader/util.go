package loader

import (
	"io"
)

// getMagic returns up to the first four bytes of r.
func getMagic(r io.ReaderAt) []byte {
	ret := make([]byte, 4)
	n, _ := r.ReadAt(ret, 0)
	return ret[:n]
}
