// Package jpegicc reads, removes and embeds ICC colour profiles stored in
// JPEG APP2 marker segments.
//
// A profile larger than a single segment's payload is split across
// multiple APP2 segments tagged "ICC_PROFILE\x00", each carrying a 1-based
// chunk index and a total chunk count. This package reassembles such
// chunks into the original profile bytes and re-encodes profiles into
// correctly framed segments, leaving every other byte of the container
// untouched.
package jpegicc
