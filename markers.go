package jpegicc

const (
	markerStart = 0xFF
	markerTEM   = 0x01
	markerRST0  = 0xD0
	markerRST7  = 0xD7
	markerSOI   = 0xD8
	markerEOI   = 0xD9
	markerSOS   = 0xDA
	markerAPP2  = 0xE2
)

// iccSig is the fixed tag opening every ICC APP2 payload.
var iccSig = []byte{'I', 'C', 'C', '_', 'P', 'R', 'O', 'F', 'I', 'L', 'E', 0}

const (
	iccTagSize    = 12
	iccHeaderSize = iccTagSize + 2 // tag + chunk index + chunk count

	maxSegmentLength = 65535

	// maxChunkData is the largest chunk payload that fits one segment:
	// the 65535 length ceiling minus the 2-byte length field and the
	// 14-byte chunk header.
	maxChunkData = maxSegmentLength - 2 - iccHeaderSize

	// maxChunks is the ceiling of the 1-byte chunk count field.
	maxChunks = 255
)

// maxScanSegments bounds a single scan so a malformed or adversarial
// buffer cannot loop forever.
const maxScanSegments = 1 << 20
