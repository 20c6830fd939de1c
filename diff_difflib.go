package main

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// computeHunksWithDifflib computes diff hunks using difflib.SequenceMatcher
// instead of the LCS matrix. It exists as an independent baseline: the two
// engines may pick different (equally minimal) alignments, but line change
// totals and round-trip behavior must agree.
func computeHunksWithDifflib(oldLines, newLines []string, contextLines int) ([]Hunk, error) {
	matcher := difflib.NewMatcher(oldLines, newLines)

	var script []EditOp
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for i, j := op.I1, op.J1; i < op.I2; i, j = i+1, j+1 {
				script = append(script, EditOp{Kind: EditKeep, AIndex: i, BIndex: j})
			}
		case 'd':
			script = appendDeletes(script, op.I1, op.I2)
		case 'i':
			script = appendInserts(script, op.J1, op.J2)
		case 'r':
			script = appendDeletes(script, op.I1, op.I2)
			script = appendInserts(script, op.J1, op.J2)
		default:
			return nil, fmt.Errorf("unsupported opcode tag: %q", op.Tag)
		}
	}

	return buildHunks(script, oldLines, newLines, max(0, contextLines)), nil
}

func appendDeletes(script []EditOp, from, to int) []EditOp {
	for i := from; i < to; i++ {
		script = append(script, EditOp{Kind: EditDelete, AIndex: i, BIndex: -1})
	}
	return script
}

func appendInserts(script []EditOp, from, to int) []EditOp {
	for j := from; j < to; j++ {
		script = append(script, EditOp{Kind: EditInsert, AIndex: -1, BIndex: j})
	}
	return script
}
