package main

// LineType represents the type of line in a diff
type LineType int

const (
	LineContext LineType = iota
	LineAdded
	LineRemoved
)

// DiffLine represents a single line in a diff
type DiffLine struct {
	Type    LineType
	Content string
}

// Hunk is one contiguous region of change plus surrounding context.
// OldStart/NewStart are 1-based line numbers into the old/new inputs of the
// first line the hunk covers. OldCount is the number of context+removed
// lines, NewCount the number of context+added lines. A zero OldCount means
// the hunk is a pure insertion whose lines go immediately before OldStart
// (symmetrically for NewCount).
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []DiffLine
}

const (
	// DefaultDiffContext is the number of context lines around each change.
	DefaultDiffContext = 3
	// WholeFileContext is a large context so a hunk spans the whole file.
	WholeFileContext = 999999
)

// buildHunks windows an edit script into hunks. Each group of changes gets
// up to contextLines of unchanged lines before and after it; two groups are
// merged into one hunk when the unchanged gap between them is small enough
// that their context windows would meet (gap <= 2*contextLines), which
// keeps emitted hunks non-overlapping and in increasing OldStart order.
func buildHunks(script []EditOp, oldLines, newLines []string, contextLines int) []Hunk {
	n := len(script)

	// Line numbers consumed on each side before script position k.
	aPos := make([]int, n+1)
	bPos := make([]int, n+1)
	for k, op := range script {
		aPos[k+1] = aPos[k]
		bPos[k+1] = bPos[k]
		switch op.Kind {
		case EditKeep:
			aPos[k+1]++
			bPos[k+1]++
		case EditDelete:
			aPos[k+1]++
		case EditInsert:
			bPos[k+1]++
		}
	}

	var hunks []Hunk
	k := 0
	for k < n {
		if script[k].Kind == EditKeep {
			k++
			continue
		}

		// Extend the group over following change runs whose keep gap is
		// within merge distance.
		first := k
		last := k
		scan := k + 1
		for scan < n {
			if script[scan].Kind != EditKeep {
				last = scan
				scan++
				continue
			}
			gapEnd := scan
			for gapEnd < n && script[gapEnd].Kind == EditKeep {
				gapEnd++
			}
			if gapEnd == n || gapEnd-scan > 2*contextLines {
				break
			}
			scan = gapEnd
		}

		start := max(0, first-contextLines)
		end := min(n, last+1+contextLines)

		hunk := Hunk{
			OldStart: aPos[start] + 1,
			NewStart: bPos[start] + 1,
		}
		for x := start; x < end; x++ {
			op := script[x]
			switch op.Kind {
			case EditKeep:
				hunk.Lines = append(hunk.Lines, DiffLine{Type: LineContext, Content: oldLines[op.AIndex]})
				hunk.OldCount++
				hunk.NewCount++
			case EditDelete:
				hunk.Lines = append(hunk.Lines, DiffLine{Type: LineRemoved, Content: oldLines[op.AIndex]})
				hunk.OldCount++
			case EditInsert:
				hunk.Lines = append(hunk.Lines, DiffLine{Type: LineAdded, Content: newLines[op.BIndex]})
				hunk.NewCount++
			}
		}

		hunks = append(hunks, hunk)
		k = end
	}

	return hunks
}
