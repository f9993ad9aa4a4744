package jpegicc

import "errors"

var (
	// ErrProfileNotFound is returned when a scan completes without
	// assembling a full ICC profile.
	ErrProfileNotFound = errors.New("icc profile not found")

	// ErrProfileTooLarge is returned when a profile cannot be encoded
	// within the segment length and chunk count ceilings.
	ErrProfileTooLarge = errors.New("icc profile too large to encode")

	// ErrInvalidContainer is returned when a buffer does not start with
	// the SOI marker.
	ErrInvalidContainer = errors.New("not a valid jpeg container")
)
