package jpegicc

import (
	"bytes"
	"testing"
)

func jpegWith(segments ...[]byte) []byte {
	out := []byte{markerStart, markerSOI}
	for _, s := range segments {
		out = append(out, s...)
	}
	return append(out, markerStart, markerEOI)
}

func TestExtractProfileSingleChunk(t *testing.T) {
	data := jpegWith(iccSegment(1, 1, []byte("hi")))
	profile, err := ExtractProfile(data)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if string(profile) != "hi" {
		t.Fatalf("profile = %q, want %q", profile, "hi")
	}
}

func TestExtractProfileNotFound(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "plain jpeg", data: jpegWith()},
		{name: "non-icc app2", data: jpegWith([]byte{markerStart, markerAPP2, 0x00, 0x06, 'M', 'P', 'F', 0x00})},
		{name: "empty buffer", data: nil},
		{name: "junk", data: []byte{0x01, 0x02, 0x03}},
		{name: "incomplete chunk set", data: jpegWith(iccSegment(1, 2, []byte("aa")))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ExtractProfile(c.data); err != ErrProfileNotFound {
				t.Fatalf("got %v, want ErrProfileNotFound", err)
			}
		})
	}
}

func TestExtractProfileChunkOrderIndependence(t *testing.T) {
	a := []byte("first part ")
	b := []byte("second part")
	want := string(a) + string(b)

	inOrder := jpegWith(iccSegment(1, 2, a), iccSegment(2, 2, b))
	reversed := jpegWith(iccSegment(2, 2, b), iccSegment(1, 2, a))

	for name, data := range map[string][]byte{"in order": inOrder, "reversed": reversed} {
		profile, err := ExtractProfile(data)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if string(profile) != want {
			t.Fatalf("%s: profile = %q, want %q", name, profile, want)
		}
	}
}

func TestExtractProfileDuplicateIndexLastWins(t *testing.T) {
	data := jpegWith(
		iccSegment(1, 2, []byte("old")),
		iccSegment(1, 2, []byte("new")),
		iccSegment(2, 2, []byte("tail")),
	)
	profile, err := ExtractProfile(data)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if string(profile) != "newtail" {
		t.Fatalf("profile = %q, want %q", profile, "newtail")
	}
}

func TestExtractProfileStopsAtFirstComplete(t *testing.T) {
	data := jpegWith(
		iccSegment(1, 1, []byte("first")),
		iccSegment(1, 1, []byte("second")),
	)
	profile, err := ExtractProfile(data)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if string(profile) != "first" {
		t.Fatalf("profile = %q, want %q", profile, "first")
	}
}

func TestExtractProfileSkipsMalformedSegment(t *testing.T) {
	// A segment declaring length 1 precedes the profile; the scanner must
	// step past it without looping or crashing.
	data := []byte{markerStart, markerSOI, markerStart, markerAPP2, 0x00, 0x01}
	data = append(data, iccSegment(1, 1, []byte("hi"))...)
	data = append(data, markerStart, markerEOI)

	profile, err := ExtractProfile(data)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if string(profile) != "hi" {
		t.Fatalf("profile = %q, want %q", profile, "hi")
	}
}

func TestExtractProfileInvalidHeaderSkipped(t *testing.T) {
	// Index 0 violates the chunk invariant; the good segment after it
	// still assembles.
	data := jpegWith(
		iccSegment(0, 1, []byte("bad")),
		iccSegment(1, 1, []byte("good")),
	)
	profile, err := ExtractProfile(data)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if string(profile) != "good" {
		t.Fatalf("profile = %q, want %q", profile, "good")
	}
}

func TestExtractProfileTruncatedTail(t *testing.T) {
	// Buffer ends on a lone 0xFF; the scan terminates cleanly.
	data := append(jpegWith(), markerStart)
	if _, err := ExtractProfile(data); err != ErrProfileNotFound {
		t.Fatalf("got %v, want ErrProfileNotFound", err)
	}
}

func TestAssemblerProfileOwnsBytes(t *testing.T) {
	src := jpegWith(iccSegment(1, 1, []byte("hi")))
	profile, err := ExtractProfile(src)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	for i := range src {
		src[i] = 0
	}
	if !bytes.Equal(profile, []byte("hi")) {
		t.Fatal("profile aliases the scanned buffer")
	}
}
