package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// hunkHeaderRe matches "@@ -start[,count] +start[,count] @@"; counts are
// optional and default to 1 (single-line-range headers).
var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// parsePatch parses unified-diff text into its ordered hunk sequence.
// Leading "---"/"+++" label lines are skipped. Parsing is fail-fast: a bad
// header returns ErrMalformedHunkHeader and a hunk whose body ends before
// its declared counts are satisfied returns ErrUnexpectedEndOfPatch; no
// partial hunk list is returned either way.
func parsePatch(patchText string) ([]Hunk, error) {
	lines := splitPatchLines(patchText)
	if err := checkLineCapacity("patch", lines); err != nil {
		return nil, err
	}

	idx := 0
	for idx < len(lines) && (strings.HasPrefix(lines[idx], "---") || strings.HasPrefix(lines[idx], "+++")) {
		idx++
	}

	var hunks []Hunk
	for idx < len(lines) {
		hunk, err := parseHunkHeader(lines[idx])
		if err != nil {
			return nil, err
		}
		idx++

		if err := parseHunkBody(&hunk, lines, &idx); err != nil {
			return nil, err
		}
		hunks = append(hunks, hunk)
	}

	return hunks, nil
}

func parseHunkHeader(line string) (Hunk, error) {
	match := hunkHeaderRe.FindStringSubmatch(line)
	if match == nil {
		return Hunk{}, fmt.Errorf("%w: %q", ErrMalformedHunkHeader, line)
	}

	oldStart, err := parseHeaderField(match[1], line)
	if err != nil {
		return Hunk{}, err
	}
	oldCount, err := parseHeaderCount(match[2], line)
	if err != nil {
		return Hunk{}, err
	}
	newStart, err := parseHeaderField(match[3], line)
	if err != nil {
		return Hunk{}, err
	}
	newCount, err := parseHeaderCount(match[4], line)
	if err != nil {
		return Hunk{}, err
	}

	return Hunk{OldStart: oldStart, OldCount: oldCount, NewStart: newStart, NewCount: newCount}, nil
}

func parseHeaderField(field, line string) (int, error) {
	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedHunkHeader, line, err)
	}
	return value, nil
}

func parseHeaderCount(field, line string) (int, error) {
	if field == "" {
		return 1, nil
	}
	return parseHeaderField(field, line)
}

// parseHunkBody consumes body lines until the header's declared old and new
// counts are both satisfied. A bare empty line is tolerated as an empty
// context line (tools that trim trailing whitespace produce these).
func parseHunkBody(hunk *Hunk, lines []string, idx *int) error {
	oldRemaining := hunk.OldCount
	newRemaining := hunk.NewCount

	for oldRemaining > 0 || newRemaining > 0 {
		if *idx >= len(lines) {
			return fmt.Errorf("%w: hunk -%d,%d +%d,%d is short %d old and %d new lines",
				ErrUnexpectedEndOfPatch, hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount,
				oldRemaining, newRemaining)
		}

		body := lines[*idx]
		if body == "" {
			body = " "
		}

		switch body[0] {
		case ' ':
			if oldRemaining == 0 || newRemaining == 0 {
				return overflowingHunkErr(hunk)
			}
			hunk.Lines = append(hunk.Lines, DiffLine{Type: LineContext, Content: body[1:]})
			oldRemaining--
			newRemaining--
		case '-':
			if oldRemaining == 0 {
				return overflowingHunkErr(hunk)
			}
			hunk.Lines = append(hunk.Lines, DiffLine{Type: LineRemoved, Content: body[1:]})
			oldRemaining--
		case '+':
			if newRemaining == 0 {
				return overflowingHunkErr(hunk)
			}
			hunk.Lines = append(hunk.Lines, DiffLine{Type: LineAdded, Content: body[1:]})
			newRemaining--
		default:
			// Body ended early; whatever this line is, the declared counts
			// are not satisfied.
			return fmt.Errorf("%w: hunk -%d,%d +%d,%d interrupted by %q",
				ErrUnexpectedEndOfPatch, hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount, body)
		}
		*idx++
	}

	return nil
}

func overflowingHunkErr(hunk *Hunk) error {
	return fmt.Errorf("%w: hunk -%d,%d +%d,%d has more body lines than its header declares",
		ErrUnexpectedEndOfPatch, hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
}
