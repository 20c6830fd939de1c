package main

import (
	"fmt"
	"strings"
)

// maxDiffLines bounds the number of lines the engine will hold for one
// input. The alignment matrix is O(m*n), so unbounded inputs could allocate
// arbitrarily large tables; callers get ErrCapacityExceeded instead.
const maxDiffLines = 1_000_000

// splitLines splits content at every line feed and strips each line's own
// terminator. A trailing newline does not produce a final empty line:
// "a\nb\n" -> ["a", "b"], same as "a\nb".
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}

	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// splitPatchLines splits patch-originated text like splitLines but also
// strips a carriage return immediately preceding each line feed, so patches
// with CRLF endings compare equal to LF originals.
func splitPatchLines(content string) []string {
	lines := splitLines(content)
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// joinLines renders a line sequence back into a text blob: lines joined
// with a line feed, with a trailing line feed if and only if the sequence
// is non-empty.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// checkLineCapacity enforces the maxDiffLines bound for a named input.
func checkLineCapacity(what string, lines []string) error {
	if len(lines) > maxDiffLines {
		return fmt.Errorf("%w: %s has %d lines (max %d)", ErrCapacityExceeded, what, len(lines), maxDiffLines)
	}
	return nil
}
