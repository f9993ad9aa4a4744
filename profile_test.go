package jpegicc

import (
	"bytes"
	"testing"
)

func TestProfileChunkCount(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{size: 0, want: 0},
		{size: 1, want: 1},
		{size: maxChunkData, want: 1},
		{size: maxChunkData + 1, want: 2},
		{size: 2*maxChunkData + 5, want: 3},
	}
	for _, c := range cases {
		p := NewProfile(make([]byte, c.size))
		if p.ChunkCount() != c.want {
			t.Errorf("ChunkCount(%d bytes) = %d, want %d", c.size, p.ChunkCount(), c.want)
		}
		if p.Len() != c.size {
			t.Errorf("Len = %d, want %d", p.Len(), c.size)
		}
	}
}

func TestProfileSetDataRecomputes(t *testing.T) {
	p := NewProfile([]byte("small"))
	if p.ChunkCount() != 1 {
		t.Fatalf("ChunkCount = %d, want 1", p.ChunkCount())
	}
	p.SetData(make([]byte, maxChunkData+1))
	if p.ChunkCount() != 2 {
		t.Fatalf("ChunkCount after SetData = %d, want 2", p.ChunkCount())
	}
	p.SetData(nil)
	if p.ChunkCount() != 0 || p.Len() != 0 {
		t.Fatalf("empty profile: count=%d len=%d", p.ChunkCount(), p.Len())
	}
}

func TestProfileCopiesInput(t *testing.T) {
	src := []byte("profile bytes")
	p := NewProfile(src)
	src[0] = 'X'
	if p.Data()[0] != 'p' {
		t.Fatal("Profile aliases caller's slice")
	}
}

func TestRenderingIntentRoundTrip(t *testing.T) {
	p := NewProfile(make([]byte, 68))
	p.SetRenderingIntent(IntentSaturation)
	v, ok := p.RenderingIntent()
	if !ok {
		t.Fatal("intent unavailable on 68-byte profile")
	}
	if v != IntentSaturation {
		t.Fatalf("intent = %d, want %d", v, IntentSaturation)
	}
	if got := p.Data()[64:68]; !bytes.Equal(got, []byte{0, 0, 0, 2}) {
		t.Fatalf("field bytes = % X, want 00 00 00 02", got)
	}
}

func TestRenderingIntentShortProfile(t *testing.T) {
	p := NewProfile(make([]byte, 67))
	if _, ok := p.RenderingIntent(); ok {
		t.Fatal("intent readable on 67-byte profile")
	}
	before := append([]byte(nil), p.Data()...)
	p.SetRenderingIntent(IntentAbsoluteColorimetric)
	if !bytes.Equal(p.Data(), before) {
		t.Fatal("write on short profile altered bytes")
	}
}

func TestProfileEmbed(t *testing.T) {
	p := NewProfile([]byte("hi"))
	out, err := p.Embed(jpegWith(iccSegment(1, 1, []byte("stale"))))
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	got, err := ExtractProfile(out)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if string(got) != "hi" {
		t.Fatalf("profile = %q, want %q", got, "hi")
	}
}
