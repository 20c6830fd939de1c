package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ChangeType represents the type of change
type ChangeType int

const (
	Modified ChangeType = iota
	Added
	Deleted
	Renamed
)

// FileDiff represents a file with its changes
type FileDiff struct {
	Path         string
	ChangeType   ChangeType
	Hunks        []Hunk
	LinesAdded   int
	LinesRemoved int
}

// DiffMode represents whether we're showing staged or unstaged changes
type DiffMode int

const (
	Unstaged DiffMode = iota
	Staged
)

// DiffViewMode represents how much context to show in diff
type DiffViewMode int

const (
	DiffOnly DiffViewMode = iota
	WholeFile
)

// MaxFileSize is the maximum file size we'll diff (10MB)
const MaxFileSize = 10 * 1024 * 1024

var errSkipDiffLoad = errors.New("skip diff load")

// GitService encapsulates all git operations
type GitService struct {
	repo *git.Repository
}

// NewGitService opens the git repository containing the working directory.
func NewGitService() (*GitService, error) {
	repoPath, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", repoPath, err)
	}

	return &GitService{repo: repo}, nil
}

// GetRootPath gets the git repository root path
func (gs *GitService) GetRootPath() (string, error) {
	worktree, err := gs.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// GetCurrentBranch gets the current branch name, or a shortened commit
// hash in detached HEAD state.
func (gs *GitService) GetCurrentBranch() (string, error) {
	ref, err := gs.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}

	if ref.Name().IsBranch() {
		return ref.Name().Short(), nil
	}

	hashStr := ref.Hash().String()
	if len(hashStr) > 7 {
		return hashStr[:7], nil
	}
	return hashStr, nil
}

// GetChangedFiles gets a list of changed files without hunks (for the tree view)
func (gs *GitService) GetChangedFiles(mode DiffMode) ([]FileDiff, error) {
	worktree, err := gs.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		if isObjectNotFoundError(err) {
			return []FileDiff{}, nil
		}
		return nil, fmt.Errorf("failed to get git status: %w", err)
	}

	var files []FileDiff
	for _, path := range sortedStatusPaths(status) {
		fileStatus := status[path]
		if !isRelevantChange(mode, status, path, fileStatus) {
			continue
		}

		files = append(files, FileDiff{
			Path:       path,
			ChangeType: changeTypeForMode(mode, status, path, fileStatus),
			Hunks:      []Hunk{},
		})
	}

	return files, nil
}

// GetDiff gets the git diff based on mode with default context.
func (gs *GitService) GetDiff(mode DiffMode, viewMode DiffViewMode, logger *Logger) ([]FileDiff, error) {
	return gs.GetDiffWithContext(mode, viewMode, DefaultDiffContext, logger)
}

// GetDiffWithContext gets the git diff based on mode and configurable context lines.
func (gs *GitService) GetDiffWithContext(mode DiffMode, viewMode DiffViewMode, contextLines int, logger *Logger) ([]FileDiff, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	worktree, idx, status, headCommit, err := gs.diffInputs(mode, logger)
	if err != nil {
		if errors.Is(err, errSkipDiffLoad) {
			return []FileDiff{}, nil
		}
		return nil, err
	}

	files := make([]FileDiff, 0, len(status))
	for _, path := range sortedStatusPaths(status) {
		fileStatus := status[path]
		if !isRelevantChange(mode, status, path, fileStatus) {
			continue
		}

		fileDiff, err := gs.getFileDiff(worktree, idx, headCommit, path, mode, viewMode, contextLines, *fileStatus, logger)
		if err != nil {
			// Log error but continue with other files
			logger.Error("get file diff", err, map[string]any{
				"file": path,
				"mode": mode,
			})
			continue
		}

		if fileDiff != nil {
			files = append(files, *fileDiff)
		}
	}

	return files, nil
}

// diffInputs gathers the worktree, index, status and HEAD commit needed for
// one diff load, or errSkipDiffLoad when the repository has no usable state
// yet (e.g. before the first commit).
func (gs *GitService) diffInputs(mode DiffMode, logger *Logger) (*git.Worktree, *index.Index, git.Status, *object.Commit, error) {
	worktree, err := gs.repo.Worktree()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	var headCommit *object.Commit
	if mode == Staged {
		headCommit, err = gs.headCommit()
		if err != nil {
			if isObjectNotFoundError(err) {
				logger.Warn("skip staged diff load: HEAD not available", nil)
				return nil, nil, nil, nil, errSkipDiffLoad
			}
			return nil, nil, nil, nil, fmt.Errorf("failed to get HEAD commit: %w", err)
		}
	}

	status, err := worktree.Status()
	if err != nil {
		if isObjectNotFoundError(err) {
			logger.Warn("skip diff load: git status unavailable", nil)
			return nil, nil, nil, nil, errSkipDiffLoad
		}
		return nil, nil, nil, nil, fmt.Errorf("failed to get git status: %w", err)
	}

	idx, err := gs.repo.Storer.Index()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to get index: %w", err)
	}

	return worktree, idx, status, headCommit, nil
}

func (gs *GitService) headCommit() (*object.Commit, error) {
	head, err := gs.repo.Head()
	if err != nil {
		return nil, err
	}
	return gs.repo.CommitObject(head.Hash())
}

// getFileDiff generates a FileDiff for a single file
func (gs *GitService) getFileDiff(worktree *git.Worktree, idx *index.Index, headCommit *object.Commit, path string, mode DiffMode, viewMode DiffViewMode, contextLines int, fileStatus git.FileStatus, logger *Logger) (*FileDiff, error) {
	oldContent, newContent, changeType, err := gs.loadDiffContents(path, mode, fileStatus, idx, headCommit, worktree, logger)
	if err != nil {
		return nil, err
	}

	hunks, err := computeHunksWithContext(
		splitLines(string(oldContent)),
		splitLines(string(newContent)),
		effectiveContextLines(viewMode, contextLines),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute diff for %s: %w", path, err)
	}

	linesAdded, linesRemoved := countHunkLineStats(hunks)
	return &FileDiff{
		Path:         path,
		ChangeType:   changeType,
		Hunks:        hunks,
		LinesAdded:   linesAdded,
		LinesRemoved: linesRemoved,
	}, nil
}

// effectiveContextLines returns the effective context lines based on view mode
func effectiveContextLines(viewMode DiffViewMode, contextLines int) int {
	if viewMode == WholeFile {
		return WholeFileContext
	}
	return contextLines
}

// loadDiffContents loads the old and new content for a file diff
func (gs *GitService) loadDiffContents(path string, mode DiffMode, fileStatus git.FileStatus, idx *index.Index, headCommit *object.Commit, worktree *git.Worktree, logger *Logger) ([]byte, []byte, ChangeType, error) {
	// Untracked files (unstaged mode only) show as pure insertions.
	if mode == Unstaged && fileStatus.Worktree == git.Untracked {
		newContent, err := gs.readWorktreeContent(path, worktree, true, logger)
		if err != nil {
			return nil, nil, Modified, err
		}
		return nil, newContent, Added, nil
	}

	changeType := statusCodeToChangeType(statusCodeForMode(mode, fileStatus))

	if mode == Staged {
		// Staged: compare index vs HEAD.
		oldContent, err := gs.readHeadContent(path, headCommit, logger)
		if err != nil {
			return nil, nil, Modified, err
		}
		newContent, err := gs.readIndexContent(path, idx, logger)
		if err != nil {
			return nil, nil, Modified, err
		}
		return oldContent, newContent, changeType, nil
	}

	// Unstaged: compare worktree vs index.
	oldContent, err := gs.readIndexContent(path, idx, logger)
	if err != nil {
		return nil, nil, Modified, err
	}
	newContent, err := gs.readWorktreeContent(path, worktree, false, logger)
	if err != nil {
		return nil, nil, Modified, err
	}
	return oldContent, newContent, changeType, nil
}

// readHeadContent reads file content from the HEAD commit; a missing file
// yields nil content (the file did not exist on that side).
func (gs *GitService) readHeadContent(path string, headCommit *object.Commit, logger *Logger) ([]byte, error) {
	if headCommit == nil {
		return nil, nil
	}
	file, err := headCommit.File(path)
	if err != nil {
		return nil, nil
	}
	reader, err := file.Reader()
	if err != nil {
		return nil, nil
	}
	content, err := readAll(reader)
	reader.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read old file %s: %w", path, err)
	}
	return content, enforceSizeLimit(path, content, logger)
}

// readIndexContent reads file content from the git index; a missing entry
// yields nil content.
func (gs *GitService) readIndexContent(path string, idx *index.Index, logger *Logger) ([]byte, error) {
	for _, entry := range idx.Entries {
		if entry.Name != path {
			continue
		}

		blob, err := object.GetBlob(gs.repo.Storer, entry.Hash)
		if err != nil {
			return nil, nil
		}
		reader, err := blob.Reader()
		if err != nil {
			return nil, nil
		}

		content, err := readAll(reader)
		reader.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s from index: %w", path, err)
		}
		return content, enforceSizeLimit(path, content, logger)
	}
	return nil, nil
}

// readWorktreeContent reads file content from the worktree. When required
// is false a missing file yields nil content (deleted on that side).
func (gs *GitService) readWorktreeContent(path string, worktree *git.Worktree, required bool, logger *Logger) ([]byte, error) {
	file, err := worktree.Filesystem.Open(path)
	if err != nil {
		if required {
			return nil, fmt.Errorf("failed to open file %s: %w", path, err)
		}
		return nil, nil
	}
	content, err := readAll(file)
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s from worktree: %w", path, err)
	}
	return content, enforceSizeLimit(path, content, logger)
}

// enforceSizeLimit checks if file content exceeds the size limit
func enforceSizeLimit(path string, content []byte, logger *Logger) error {
	if len(content) <= MaxFileSize {
		return nil
	}
	logger.Warn("file too large to diff", map[string]any{
		"file": path,
		"size": len(content),
		"max":  MaxFileSize,
	})
	return fmt.Errorf("file %s too large to diff (%d > %d)", path, len(content), MaxFileSize)
}

// countHunkLineStats counts added and removed lines in hunks
func countHunkLineStats(hunks []Hunk) (added int, removed int) {
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			if line.Type == LineAdded {
				added++
			} else if line.Type == LineRemoved {
				removed++
			}
		}
	}
	return added, removed
}

// sortedStatusPaths returns sorted paths from a git status
func sortedStatusPaths(status git.Status) []string {
	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// statusCodeForMode returns the status code for a file based on diff mode
func statusCodeForMode(mode DiffMode, fileStatus git.FileStatus) string {
	if mode == Staged {
		return string(fileStatus.Staging)
	}
	return string(fileStatus.Worktree)
}

// statusCodeToChangeType converts a git status code to a ChangeType
func statusCodeToChangeType(statusCode string) ChangeType {
	switch statusCode {
	case "M":
		return Modified
	case "A":
		return Added
	case "D":
		return Deleted
	case "R":
		return Renamed
	default:
		return Modified
	}
}

// isRelevantChange checks if a file change is relevant for the given mode
func isRelevantChange(mode DiffMode, status git.Status, path string, fileStatus *git.FileStatus) bool {
	if mode == Staged {
		return fileStatus.Staging != git.Unmodified && !status.IsUntracked(path)
	}
	return fileStatus.Worktree != git.Unmodified || status.IsUntracked(path)
}

// changeTypeForMode determines the change type for a file based on mode
func changeTypeForMode(mode DiffMode, status git.Status, path string, fileStatus *git.FileStatus) ChangeType {
	if mode == Unstaged && status.IsUntracked(path) {
		return Added
	}
	return statusCodeToChangeType(statusCodeForMode(mode, *fileStatus))
}

// isObjectNotFoundError reports whether err means a git object or reference
// is simply absent (fresh repository, unborn HEAD).
func isObjectNotFoundError(err error) bool {
	return errors.Is(err, plumbing.ErrObjectNotFound) || errors.Is(err, plumbing.ErrReferenceNotFound)
}
