package jpegicc

import "bytes"

// StripProfile returns a copy of jpegData without any ICC-tagged APP2
// segment and reports whether one was dropped. Every other byte is
// preserved as-is; a buffer carrying no ICC segment comes back
// byte-identical. Consecutive ICC segments are all removed.
func StripProfile(jpegData []byte) ([]byte, bool) {
	var out bytes.Buffer
	out.Grow(len(jpegData))
	removed := false
	pos := 0
	for n := 0; n < maxScanSegments; n++ {
		p, err := nextMarker(jpegData, pos)
		if err != nil {
			break
		}
		out.Write(jpegData[pos:p])
		for p+1 < len(jpegData) && jpegData[p+1] == markerStart {
			out.WriteByte(markerStart)
			p++
		}
		seg, err := readSegment(jpegData, p)
		if err == errTruncated {
			out.Write(jpegData[p:])
			return out.Bytes(), removed
		}
		if err != nil {
			out.Write(jpegData[p : p+2])
			pos = p + 2
			continue
		}
		if isICCSegment(jpegData, seg) {
			removed = true
			pos = seg.next()
			continue
		}
		out.Write(jpegData[p:seg.next()])
		pos = seg.next()
	}
	out.Write(jpegData[pos:])
	return out.Bytes(), removed
}

// InsertProfile returns a copy of jpegData with profile encoded as APP2
// segments spliced in immediately after the SOI marker; no other byte is
// altered. The buffer must start with SOI or ErrInvalidContainer is
// returned. An empty profile leaves the buffer unchanged.
func InsertProfile(jpegData, profile []byte) ([]byte, error) {
	if len(jpegData) < 2 || jpegData[0] != markerStart || jpegData[1] != markerSOI {
		return nil, ErrInvalidContainer
	}
	block, err := encodeChunks(profile)
	if err != nil {
		return nil, err
	}
	if len(block) == 0 {
		return append([]byte(nil), jpegData...), nil
	}
	out := make([]byte, 0, len(jpegData)+len(block))
	out = append(out, jpegData[:2]...)
	out = append(out, block...)
	out = append(out, jpegData[2:]...)
	return out, nil
}

// ReplaceProfile strips any embedded ICC segments from jpegData and
// inserts profile, guaranteeing at most one profile in the result no
// matter how many were present before.
func ReplaceProfile(jpegData, profile []byte) ([]byte, error) {
	stripped, _ := StripProfile(jpegData)
	return InsertProfile(stripped, profile)
}
