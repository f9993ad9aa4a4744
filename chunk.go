package jpegicc

import "bytes"

// chunkHeader is the two bytes following the ICC tag: a 1-based chunk
// index and the total chunk count.
type chunkHeader struct {
	index int
	count int
}

// isICCSegment reports whether seg is an APP2 segment whose payload opens
// with the ICC tag. The chunk header is not validated here; removal drops
// any tagged segment, valid header or not.
func isICCSegment(data []byte, seg segment) bool {
	if seg.marker != markerAPP2 {
		return false
	}
	if seg.payloadEnd-seg.payloadStart < iccTagSize {
		return false
	}
	return bytes.HasPrefix(data[seg.payloadStart:seg.payloadEnd], iccSig)
}

// parseICCChunk extracts the chunk header and data slice from an APP2
// segment. ok is false when the segment is not a usable ICC chunk: wrong
// marker, payload too small for the 14-byte header, tag mismatch, or an
// index/count pair violating 1 <= index <= count.
func parseICCChunk(data []byte, seg segment) (chunkHeader, []byte, bool) {
	if seg.marker != markerAPP2 {
		return chunkHeader{}, nil, false
	}
	payload := data[seg.payloadStart:seg.payloadEnd]
	if len(payload) < iccHeaderSize {
		return chunkHeader{}, nil, false
	}
	if !bytes.HasPrefix(payload, iccSig) {
		return chunkHeader{}, nil, false
	}
	h := chunkHeader{index: int(payload[iccTagSize]), count: int(payload[iccTagSize+1])}
	if h.index < 1 || h.index > h.count {
		return chunkHeader{}, nil, false
	}
	return h, payload[iccHeaderSize:], true
}

// encodeChunks frames profile as a block of APP2 segments, at most
// maxChunkData profile bytes per segment. An empty profile encodes to
// nil. Output is deterministic: chunks appear in index order.
func encodeChunks(profile []byte) ([]byte, error) {
	if len(profile) == 0 {
		return nil, nil
	}
	count := (len(profile) + maxChunkData - 1) / maxChunkData
	if count > maxChunks {
		return nil, ErrProfileTooLarge
	}
	var out bytes.Buffer
	out.Grow(len(profile) + count*(4+iccHeaderSize))
	for i := 1; i <= count; i++ {
		start := (i - 1) * maxChunkData
		end := start + maxChunkData
		if end > len(profile) {
			end = len(profile)
		}
		segLen := 2 + iccHeaderSize + (end - start)
		if segLen > maxSegmentLength {
			return nil, ErrProfileTooLarge
		}
		out.WriteByte(markerStart)
		out.WriteByte(markerAPP2)
		out.WriteByte(byte(segLen >> 8))
		out.WriteByte(byte(segLen))
		out.Write(iccSig)
		out.WriteByte(byte(i))
		out.WriteByte(byte(count))
		out.Write(profile[start:end])
	}
	return out.Bytes(), nil
}
