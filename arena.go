package intern

import "unsafe"

const (
	// DefaultChunkSize is the size in bytes of the first arena chunk.
	DefaultChunkSize = 4 << 10

	// MaxChunkSize caps chunk growth. Strings larger than this get a chunk of
	// their own.
	MaxChunkSize = 1 << 20
)

// arena is an append-only store for string content.
//
// Bytes are appended to the current chunk only while they fit in its capacity,
// so append never reallocates and written bytes never move. When a string does
// not fit, a fresh chunk is started and the old one is left to the strings that
// point into it.
type arena struct {
	chunk    []byte
	nextSize int
	chunks   int
	used     int64
	reserved int64
}

func newArena(chunkSize int) arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return arena{nextSize: chunkSize}
}

// store copies s into the arena and returns a string backed by arena memory.
func (a *arena) store(s string) string {
	if len(s) == 0 {
		return ""
	}
	a.reserve(len(s))
	off := len(a.chunk)
	a.chunk = append(a.chunk, s...)
	return a.view(off, len(s))
}

// storeBytes is store for a byte slice.
func (a *arena) storeBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	a.reserve(len(b))
	off := len(a.chunk)
	a.chunk = append(a.chunk, b...)
	return a.view(off, len(b))
}

// reserve makes sure the current chunk has room for n more bytes.
func (a *arena) reserve(n int) {
	if len(a.chunk)+n <= cap(a.chunk) {
		return
	}

	size := a.nextSize
	if size < n {
		size = n
	}
	a.chunk = make([]byte, 0, size)
	a.chunks++
	a.reserved += int64(size)

	if a.nextSize < MaxChunkSize {
		a.nextSize *= 2
		if a.nextSize > MaxChunkSize {
			a.nextSize = MaxChunkSize
		}
	}
}

func (a *arena) view(off, n int) string {
	a.used += int64(n)
	return unsafe.String(&a.chunk[off], n)
}
