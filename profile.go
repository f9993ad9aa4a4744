package jpegicc

import "encoding/binary"

// renderingIntentOffset is the byte offset of the rendering-intent field
// in the ICC profile header.
const renderingIntentOffset = 64

// Standard rendering-intent values.
const (
	IntentPerceptual           uint32 = 0
	IntentRelativeColorimetric uint32 = 1
	IntentSaturation           uint32 = 2
	IntentAbsoluteColorimetric uint32 = 3
)

// Profile holds an ICC profile as opaque bytes together with the number
// of APP2 chunks needed to embed it. The zero value is an empty profile.
type Profile struct {
	data       []byte
	chunkCount int
}

// NewProfile wraps a copy of raw ICC profile bytes. No parsing happens;
// the bytes are treated as opaque.
func NewProfile(data []byte) *Profile {
	p := &Profile{}
	p.SetData(data)
	return p
}

// SetData replaces the profile bytes and recomputes the chunk count.
func (p *Profile) SetData(data []byte) {
	p.data = append([]byte(nil), data...)
	p.chunkCount = (len(data) + maxChunkData - 1) / maxChunkData
}

// Data returns the profile bytes.
func (p *Profile) Data() []byte { return p.data }

// Len returns the profile length in bytes.
func (p *Profile) Len() int { return len(p.data) }

// ChunkCount returns the number of APP2 segments needed to embed the
// profile at the maximum per-segment payload. It is 0 for an empty
// profile.
func (p *Profile) ChunkCount() int { return p.chunkCount }

// RenderingIntent reads the big-endian rendering-intent field. ok is
// false when the profile is too short to carry the header field.
func (p *Profile) RenderingIntent() (uint32, bool) {
	if len(p.data) < renderingIntentOffset+4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(p.data[renderingIntentOffset:]), true
}

// SetRenderingIntent patches the rendering-intent field in place.
// Writing to a profile too short to carry the field is a no-op, matching
// the read threshold.
func (p *Profile) SetRenderingIntent(v uint32) {
	if len(p.data) < renderingIntentOffset+4 {
		return
	}
	binary.BigEndian.PutUint32(p.data[renderingIntentOffset:], v)
}

// Embed encodes the profile into jpegData after removing any profile
// already present.
func (p *Profile) Embed(jpegData []byte) ([]byte, error) {
	return ReplaceProfile(jpegData, p.data)
}
