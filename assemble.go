package jpegicc

// assembler collects ICC chunks discovered during a scan and detects when
// the set is complete.
type assembler struct {
	chunks map[int][]byte
	count  int // chunk count declared by the most recently added chunk
}

func newAssembler() *assembler {
	return &assembler{chunks: map[int][]byte{}}
}

// add records a chunk. A duplicate index overwrites the earlier data.
func (a *assembler) add(h chunkHeader, data []byte) {
	a.chunks[h.index] = data
	a.count = h.count
}

// complete reports whether every declared chunk has been seen. Header
// validation guarantees indices stay within 1..count, so a matching map
// size means the set is whole.
func (a *assembler) complete() bool {
	return a.count > 0 && len(a.chunks) == a.count
}

// profile concatenates chunk data in index order into a fresh buffer.
func (a *assembler) profile() []byte {
	size := 0
	for _, c := range a.chunks {
		size += len(c)
	}
	out := make([]byte, 0, size)
	for i := 1; i <= a.count; i++ {
		out = append(out, a.chunks[i]...)
	}
	return out
}
