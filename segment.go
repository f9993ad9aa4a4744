package jpegicc

import (
	"encoding/binary"
	"errors"
)

// segment describes one marker segment located during a scan. It is
// transient; offsets refer to the buffer the scan is walking.
type segment struct {
	marker       byte
	offset       int // position of the 0xFF marker byte
	length       int // declared length, 0 for bare markers
	payloadStart int
	payloadEnd   int
}

var (
	errNoMarker  = errors.New("no marker found")
	errTruncated = errors.New("truncated segment")
	errMalformed = errors.New("malformed segment")
)

// nextMarker returns the offset of the first 0xFF byte at or after from.
func nextMarker(data []byte, from int) (int, error) {
	for i := from; i < len(data); i++ {
		if data[i] == markerStart {
			return i, nil
		}
	}
	return 0, errNoMarker
}

// hasLength reports whether a marker type is followed by a big-endian
// 16-bit length field. Restart markers, SOI, EOI and TEM are bare.
func hasLength(marker byte) bool {
	if marker >= markerRST0 && marker <= markerRST7 {
		return false
	}
	switch marker {
	case markerSOI, markerEOI, markerTEM:
		return false
	}
	return true
}

// readSegment decodes the segment starting at pos, which must point at a
// 0xFF byte. errTruncated means the buffer ends before the marker type or
// length field and the scan cannot continue; errMalformed means the
// declared length is below 2 or the payload extends past the buffer, and
// the caller skips the 2-byte marker instead.
func readSegment(data []byte, pos int) (segment, error) {
	if pos+1 >= len(data) {
		return segment{}, errTruncated
	}
	seg := segment{marker: data[pos+1], offset: pos}
	if !hasLength(seg.marker) {
		seg.payloadStart = pos + 2
		seg.payloadEnd = pos + 2
		return seg, nil
	}
	if pos+4 > len(data) {
		return segment{}, errTruncated
	}
	seg.length = int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
	if seg.length < 2 || pos+2+seg.length > len(data) {
		return segment{}, errMalformed
	}
	seg.payloadStart = pos + 4
	seg.payloadEnd = pos + 2 + seg.length
	return seg, nil
}

// next returns the scan position immediately after the segment.
func (s segment) next() int {
	if s.length == 0 {
		return s.offset + 2
	}
	return s.offset + 2 + s.length
}
