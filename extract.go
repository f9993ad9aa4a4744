package jpegicc

// ExtractProfile reassembles the ICC profile embedded in jpegData.
//
// Chunks may appear out of order or duplicated; the last chunk seen at an
// index wins. Scanning stops at the first complete profile, so a buffer
// carrying two distinct profiles yields the first. Malformed segments and
// invalid chunk headers are skipped, not fatal. ErrProfileNotFound is
// returned when the buffer holds no complete profile; partial chunk sets
// are never surfaced.
func ExtractProfile(jpegData []byte) ([]byte, error) {
	asm := newAssembler()
	pos := 0
	for n := 0; n < maxScanSegments; n++ {
		p, err := nextMarker(jpegData, pos)
		if err != nil {
			break
		}
		for p+1 < len(jpegData) && jpegData[p+1] == markerStart {
			p++
		}
		seg, err := readSegment(jpegData, p)
		if err == errTruncated {
			break
		}
		if err != nil {
			pos = p + 2
			continue
		}
		if h, data, ok := parseICCChunk(jpegData, seg); ok {
			asm.add(h, data)
			if asm.complete() {
				return asm.profile(), nil
			}
		}
		pos = seg.next()
	}
	return nil, ErrProfileNotFound
}
