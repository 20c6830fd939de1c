package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Panel represents which panel is active
type Panel int

const (
	FileTreePanel Panel = iota
	DiffPanel
)

// Model holds the application state
type Model struct {
	gitService  *GitService
	logger      *Logger
	watcher     *Watcher
	highlighter *SyntaxHighlighter

	files         []FileDiff // changed files (tree view, no hunks)
	diffFiles     []FileDiff // files with full diff content
	fileTree      []TreeNode
	selectedIndex int
	panel         Panel
	diffMode      DiffMode
	diffViewMode  DiffViewMode
	scrollOffset  int // file tree scrolling
	diffScroll    int // diff panel scrolling
	width         int
	height        int
	rootPath      string
	branch        string
	showHelp      bool
	quitting      bool
	err           error
}

// TreeNode represents a node in the file tree
type TreeNode struct {
	name         string
	path         string
	isDir        bool
	isExpanded   bool
	children     []TreeNode
	changeType   ChangeType
	linesAdded   int
	linesRemoved int
	depth        int
}

// NewModel creates a new model
func NewModel(gitService *GitService, logger *Logger) Model {
	return Model{
		gitService:   gitService,
		logger:       logger,
		highlighter:  NewSyntaxHighlighter(),
		panel:        FileTreePanel,
		diffMode:     Unstaged,
		diffViewMode: DiffOnly,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.LoadGitInfo(),
		m.LoadFiles(),
		m.LoadAllDiffs(),
	)
}

// LoadGitInfo loads git repository info
func (m Model) LoadGitInfo() tea.Cmd {
	return func() tea.Msg {
		rootPath, err := m.gitService.GetRootPath()
		if err != nil {
			return errMsg{err}
		}
		branch, err := m.gitService.GetCurrentBranch()
		if err != nil {
			return errMsg{err}
		}
		return gitInfoMsg{rootPath, branch}
	}
}

// LoadFiles loads the changed file list for the tree view
func (m Model) LoadFiles() tea.Cmd {
	return func() tea.Msg {
		files, err := m.gitService.GetChangedFiles(m.diffMode)
		if err != nil {
			return errMsg{err}
		}
		return filesLoadedMsg{files}
	}
}

// LoadAllDiffs loads diffs for all changed files
func (m Model) LoadAllDiffs() tea.Cmd {
	return func() tea.Msg {
		files, err := m.gitService.GetDiff(m.diffMode, m.diffViewMode, m.logger)
		if err != nil {
			return errMsg{err}
		}
		return allDiffsLoadedMsg{files}
	}
}

// GetTotalStats returns the number of changed files and total added/removed lines
func (m Model) GetTotalStats() (files, added, removed int) {
	for _, f := range m.diffFiles {
		files++
		added += f.LinesAdded
		removed += f.LinesRemoved
	}
	return files, added, removed
}

// Messages

type gitInfoMsg struct {
	rootPath string
	branch   string
}

type filesLoadedMsg struct {
	files []FileDiff
}

type allDiffsLoadedMsg struct {
	files []FileDiff
}

type errMsg struct {
	err error
}

type clearErrorMsg struct{}
