package main

import "fmt"

// ApplyOptions controls patch application policy.
type ApplyOptions struct {
	// Lenient downgrades context/delete content mismatches from
	// ErrPatchDoesNotApply to a logged warning. Hunks that address lines
	// beyond the original input still fail; that is a bounds violation,
	// not a content divergence.
	Lenient bool
	// Logger receives lenient-mode divergence warnings. May be nil.
	Logger *Logger
}

// applyPatchText parses patchText and applies it to originalText, returning
// the reconstructed blob. Strict mode: any divergence fails.
func applyPatchText(originalText, patchText string) (string, error) {
	return applyPatchTextWithOptions(originalText, patchText, ApplyOptions{})
}

func applyPatchTextWithOptions(originalText, patchText string, opts ApplyOptions) (string, error) {
	hunks, err := parsePatch(patchText)
	if err != nil {
		return "", err
	}

	original := splitLines(originalText)
	if err := checkLineCapacity("original input", original); err != nil {
		return "", err
	}

	result, err := applyHunks(original, hunks, opts)
	if err != nil {
		return "", err
	}
	return joinLines(result), nil
}

// applyHunks replays hunks against the original line sequence in lockstep:
// unchanged lines before each hunk are copied verbatim, context lines are
// verified against the original and re-emitted, removed lines advance past
// the original without emitting, and added lines are emitted from the hunk.
func applyHunks(original []string, hunks []Hunk, opts ApplyOptions) ([]string, error) {
	result := make([]string, 0, len(original))
	origIdx := 0

	for _, hunk := range hunks {
		target := hunk.OldStart - 1
		if target < origIdx {
			return nil, fmt.Errorf("%w: hunk at line %d overlaps the previous hunk", ErrPatchDoesNotApply, hunk.OldStart)
		}
		if target > len(original) {
			return nil, fmt.Errorf("%w: hunk at line %d starts beyond the original (%d lines)", ErrPatchDoesNotApply, hunk.OldStart, len(original))
		}

		result = append(result, original[origIdx:target]...)
		origIdx = target

		for _, line := range hunk.Lines {
			switch line.Type {
			case LineContext:
				if err := verifyOriginalLine(original, origIdx, line, hunk, opts); err != nil {
					return nil, err
				}
				result = append(result, original[origIdx])
				origIdx++
			case LineRemoved:
				if err := verifyOriginalLine(original, origIdx, line, hunk, opts); err != nil {
					return nil, err
				}
				origIdx++
			case LineAdded:
				result = append(result, line.Content)
			}
		}
	}

	result = append(result, original[origIdx:]...)
	return result, nil
}

// verifyOriginalLine checks that a context/removed hunk line still matches
// the original content at the cursor. Running past the end of the original
// is always fatal; a content mismatch is fatal in strict mode and logged in
// lenient mode.
func verifyOriginalLine(original []string, origIdx int, line DiffLine, hunk Hunk, opts ApplyOptions) error {
	if origIdx >= len(original) {
		return fmt.Errorf("%w: hunk -%d,%d reads past the end of the original (%d lines)",
			ErrPatchDoesNotApply, hunk.OldStart, hunk.OldCount, len(original))
	}

	if original[origIdx] == line.Content {
		return nil
	}

	if !opts.Lenient {
		return fmt.Errorf("%w: line %d is %q, hunk -%d,%d expects %q",
			ErrPatchDoesNotApply, origIdx+1, original[origIdx], hunk.OldStart, hunk.OldCount, line.Content)
	}

	if opts.Logger != nil {
		opts.Logger.Warn("patch content diverges from original", map[string]any{
			"line":     origIdx + 1,
			"original": original[origIdx],
			"expected": line.Content,
		})
	}
	return nil
}
