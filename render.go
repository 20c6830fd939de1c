package main

import (
	"fmt"
	"strings"
)

// renderUnifiedDiff emits hunks as a unified-diff document: two label
// header lines, then per hunk a "@@ -start,count +start,count @@" header
// followed by body lines prefixed with ' ', '-' or '+'.
func renderUnifiedDiff(oldLabel, newLabel string, hunks []Hunk) string {
	var b strings.Builder

	b.WriteString("--- ")
	b.WriteString(oldLabel)
	b.WriteByte('\n')
	b.WriteString("+++ ")
	b.WriteString(newLabel)
	b.WriteByte('\n')

	for _, hunk := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
		for _, line := range hunk.Lines {
			b.WriteByte(linePrefix(line.Type))
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func linePrefix(lineType LineType) byte {
	switch lineType {
	case LineAdded:
		return '+'
	case LineRemoved:
		return '-'
	default:
		return ' '
	}
}

// diffText diffs two text blobs and renders the unified-diff document.
// Identical inputs produce just the two header lines.
func diffText(oldText, newText, oldLabel, newLabel string, contextLines int) (string, error) {
	hunks, err := computeHunksWithContext(splitLines(oldText), splitLines(newText), contextLines)
	if err != nil {
		return "", err
	}
	return renderUnifiedDiff(oldLabel, newLabel, hunks), nil
}
