package main

import "errors"

// Engine failure conditions. All engine entry points return one of these
// (wrapped with position detail) instead of emitting partial output.
var (
	// ErrCapacityExceeded means an input is larger than the line-count
	// safety bound. The caller can retry with smaller inputs; content is
	// never silently truncated.
	ErrCapacityExceeded = errors.New("input exceeds line capacity")

	// ErrMalformedHunkHeader means a patch line that should be a
	// "@@ -start,count +start,count @@" header could not be parsed.
	ErrMalformedHunkHeader = errors.New("malformed hunk header")

	// ErrUnexpectedEndOfPatch means a hunk body ended before its header's
	// declared line counts were satisfied.
	ErrUnexpectedEndOfPatch = errors.New("unexpected end of patch")

	// ErrPatchDoesNotApply means a hunk addresses lines beyond the original
	// input, or a context/delete line disagrees with the original content
	// at that position.
	ErrPatchDoesNotApply = errors.New("patch does not apply")
)
