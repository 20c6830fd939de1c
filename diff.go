package main

// EditKind tags a single step of an edit script.
type EditKind int

const (
	EditKeep   EditKind = iota // line unchanged, present in both inputs
	EditDelete                 // line present only in the old input
	EditInsert                 // line present only in the new input
)

// EditOp is one step of an edit script. AIndex/BIndex are 0-based indexes
// into the old/new line sequences; an index is -1 when the op does not
// touch that side (inserts have no AIndex, deletes no BIndex).
type EditOp struct {
	Kind   EditKind
	AIndex int
	BIndex int
}

// alignmentMatrix is the LCS length table for two line sequences, stored
// as a flat (m+1)*(n+1) slice. cell(i,j) is the LCS length of the first i
// old lines and the first j new lines.
type alignmentMatrix struct {
	cells []int
	cols  int
}

func newAlignmentMatrix(oldLines, newLines []string) alignmentMatrix {
	m := len(oldLines)
	n := len(newLines)

	mat := alignmentMatrix{
		cells: make([]int, (m+1)*(n+1)),
		cols:  n + 1,
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldLines[i-1] == newLines[j-1] {
				mat.set(i, j, mat.at(i-1, j-1)+1)
			} else {
				mat.set(i, j, max(mat.at(i-1, j), mat.at(i, j-1)))
			}
		}
	}

	return mat
}

func (m alignmentMatrix) at(i, j int) int { return m.cells[i*m.cols+j] }
func (m alignmentMatrix) set(i, j, v int) { m.cells[i*m.cols+j] = v }

// computeEditScript returns the ordered keep/delete/insert sequence that
// transforms oldLines into newLines, backtracking the alignment matrix
// from (m,n) to (0,0).
//
// Tie-break contract: a matching line is always consumed as a Keep, and
// when neither side matches, the new side is consumed first whenever its
// matrix score is at least the old side's. This pins which of several
// minimal scripts is produced, so output is reproducible; reading the
// script forward, deletions in a changed region come before insertions.
func computeEditScript(oldLines, newLines []string) []EditOp {
	mat := newAlignmentMatrix(oldLines, newLines)

	i := len(oldLines)
	j := len(newLines)
	ops := make([]EditOp, 0, i+j)

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldLines[i-1] == newLines[j-1]:
			ops = append(ops, EditOp{Kind: EditKeep, AIndex: i - 1, BIndex: j - 1})
			i--
			j--
		case j > 0 && (i == 0 || mat.at(i, j-1) >= mat.at(i-1, j)):
			ops = append(ops, EditOp{Kind: EditInsert, AIndex: -1, BIndex: j - 1})
			j--
		default:
			ops = append(ops, EditOp{Kind: EditDelete, AIndex: i - 1, BIndex: -1})
			i--
		}
	}

	// Backtracking built the script in reverse.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}

// computeHunks computes diff hunks between two line sequences with the
// default amount of surrounding context.
func computeHunks(oldLines, newLines []string) ([]Hunk, error) {
	return computeHunksWithContext(oldLines, newLines, DefaultDiffContext)
}

// computeHunksWithContext computes diff hunks with a configurable number
// of context lines around each change.
func computeHunksWithContext(oldLines, newLines []string, contextLines int) ([]Hunk, error) {
	if err := checkLineCapacity("old input", oldLines); err != nil {
		return nil, err
	}
	if err := checkLineCapacity("new input", newLines); err != nil {
		return nil, err
	}

	script := computeEditScript(oldLines, newLines)
	return buildHunks(script, oldLines, newLines, max(0, contextLines)), nil
}
