package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// dirNode is used for building the file tree
type dirNode struct {
	path    string
	name    string
	files   []FileDiff
	subdirs map[string]*dirNode
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case gitInfoMsg:
		m.rootPath = msg.rootPath
		m.branch = msg.branch
		cmd := m.startWatcher()
		return m, cmd

	case filesLoadedMsg:
		m.files = msg.files
		m.buildFileTree()
		m.selectedIndex = clamp(m.selectedIndex, 0, max(0, len(m.flattenTree())-1))
		return m, nil

	case allDiffsLoadedMsg:
		m.diffFiles = msg.files
		return m, nil

	case FSChangeMsg:
		// Working tree changed; reload and keep watching.
		return m, tea.Batch(m.LoadFiles(), m.LoadAllDiffs(), m.waitForChange())

	case errMsg:
		m.err = msg.err
		if m.logger != nil {
			m.logger.Error("ui error", msg.err, nil)
		}
		return m, nil

	case clearErrorMsg:
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
		return m, tea.Quit

	case "up", "k":
		if m.panel == DiffPanel {
			m.moveDiffBy(-1)
		} else {
			m.moveUp()
		}
		return m, nil

	case "down", "j":
		if m.panel == DiffPanel {
			m.moveDiffBy(1)
		} else {
			m.moveDown()
		}
		return m, nil

	case "pgup":
		if m.panel == DiffPanel {
			m.moveDiffBy(-m.diffPageSize())
		}
		return m, nil

	case "pgdown":
		if m.panel == DiffPanel {
			m.moveDiffBy(m.diffPageSize())
		}
		return m, nil

	case "tab":
		if m.panel == FileTreePanel {
			m.panel = DiffPanel
		} else {
			m.panel = FileTreePanel
		}
		return m, nil

	case "enter", " ":
		if m.panel == FileTreePanel {
			cmd := m.selectItem()
			return m, cmd
		}
		return m, nil

	case "s":
		if m.diffMode == Unstaged {
			m.diffMode = Staged
		} else {
			m.diffMode = Unstaged
		}
		m.selectedIndex = 0
		m.scrollOffset = 0
		m.diffScroll = 0
		m.diffFiles = nil
		return m, tea.Batch(m.LoadFiles(), m.LoadAllDiffs())

	case "f":
		if m.diffViewMode == DiffOnly {
			m.diffViewMode = WholeFile
		} else {
			m.diffViewMode = DiffOnly
		}
		m.diffScroll = 0
		m.diffFiles = nil
		return m, m.LoadAllDiffs()

	case "?":
		m.showHelp = true
		return m, nil
	}

	return m, nil
}

// startWatcher begins watching the worktree once the repository root is known.
func (m *Model) startWatcher() tea.Cmd {
	if m.watcher != nil || m.rootPath == "" {
		return nil
	}

	watcher, err := NewWatcher(m.rootPath)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("file watching disabled", map[string]any{"error": err.Error()})
		}
		return nil
	}

	m.watcher = watcher
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.WaitForChange()
}

// moveUp moves the file tree selection up
func (m *Model) moveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
		if m.selectedIndex < m.scrollOffset {
			m.scrollOffset = m.selectedIndex
		}
	}
}

// moveDown moves the file tree selection down
func (m *Model) moveDown() {
	if m.selectedIndex < len(m.flattenTree())-1 {
		m.selectedIndex++

		visible := panelContentHeight(contentHeight(m.height))
		if m.selectedIndex >= m.scrollOffset+visible {
			m.scrollOffset = m.selectedIndex - visible + 1
		}
	}
}

// moveDiffBy scrolls the diff view by delta lines
func (m *Model) moveDiffBy(delta int) {
	maxScroll := max(0, m.getDiffLineCount()-m.diffPageSize())
	m.diffScroll = clamp(m.diffScroll+delta, 0, maxScroll)
}

func (m *Model) diffPageSize() int {
	return max(1, panelContentHeight(contentHeight(m.height)))
}

// getDiffLineCount returns the total number of rendered lines in the current diff
func (m *Model) getDiffLineCount() int {
	file := m.selectedFile()
	if file == nil {
		return 0
	}

	count := 0
	for _, hunk := range file.Hunks {
		count += 1 + len(hunk.Lines) // 1 for the hunk header
	}
	return count
}

// selectedFile returns the diff for the currently selected tree node, if any
func (m *Model) selectedFile() *FileDiff {
	flatTree := m.flattenTree()
	if m.selectedIndex >= len(flatTree) {
		return nil
	}

	node := flatTree[m.selectedIndex]
	if node.isDir {
		return nil
	}

	for i := range m.diffFiles {
		if m.diffFiles[i].Path == node.path {
			return &m.diffFiles[i]
		}
	}
	return nil
}

// selectItem handles selection of the current tree item
func (m *Model) selectItem() tea.Cmd {
	flatTree := m.flattenTree()
	if m.selectedIndex >= len(flatTree) {
		return nil
	}

	node := flatTree[m.selectedIndex]
	if node.isDir {
		m.toggleDirectory(node.path)
		return nil
	}

	m.diffScroll = 0
	m.panel = DiffPanel
	return nil
}

// toggleDirectory toggles directory expansion
func (m *Model) toggleDirectory(path string) {
	var toggle func(nodes []TreeNode) bool
	toggle = func(nodes []TreeNode) bool {
		for i := range nodes {
			if nodes[i].path == path && nodes[i].isDir {
				nodes[i].isExpanded = !nodes[i].isExpanded
				return true
			}
			if nodes[i].isDir && toggle(nodes[i].children) {
				return true
			}
		}
		return false
	}
	toggle(m.fileTree)
}

// flattenTree flattens the tree for navigation
func (m *Model) flattenTree() []TreeNode {
	return flattenTree(m.fileTree, 0)
}

func flattenTree(nodes []TreeNode, depth int) []TreeNode {
	var result []TreeNode
	for _, node := range nodes {
		node.depth = depth
		result = append(result, node)
		if node.isDir && node.isExpanded {
			result = append(result, flattenTree(node.children, depth+1)...)
		}
	}
	return result
}

// buildFileTree builds the file tree from the list of changed files
func (m *Model) buildFileTree() {
	root := &dirNode{
		subdirs: make(map[string]*dirNode),
	}

	for _, file := range m.files {
		parts := splitPath(file.Path)
		current := root

		for i, part := range parts {
			if i == len(parts)-1 {
				current.files = append(current.files, file)
			} else {
				if current.subdirs[part] == nil {
					current.subdirs[part] = &dirNode{
						path:    joinPath(parts[:i+1]),
						name:    part,
						subdirs: make(map[string]*dirNode),
					}
				}
				current = current.subdirs[part]
			}
		}
	}

	m.fileTree = buildTreeNodes(root)

	// Auto-expand a single top-level directory
	if len(m.fileTree) == 1 && m.fileTree[0].isDir {
		m.fileTree[0].isExpanded = true
	}
}

func buildTreeNodes(dir *dirNode) []TreeNode {
	var nodes []TreeNode

	for _, name := range sortedSubdirNames(dir) {
		subdir := dir.subdirs[name]
		nodes = append(nodes, TreeNode{
			name:       subdir.name,
			path:       subdir.path,
			isDir:      true,
			children:   buildTreeNodes(subdir),
			changeType: dirChangeType(subdir),
		})
	}

	for _, file := range dir.files {
		nodes = append(nodes, TreeNode{
			name:         fileNameFromPath(file.Path),
			path:         file.Path,
			changeType:   file.ChangeType,
			linesAdded:   file.LinesAdded,
			linesRemoved: file.LinesRemoved,
		})
	}

	return nodes
}

func sortedSubdirNames(dir *dirNode) []string {
	names := make([]string, 0, len(dir.subdirs))
	for name := range dir.subdirs {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}

// dirChangeType summarizes a directory's change type from its contents
func dirChangeType(dir *dirNode) ChangeType {
	hasAdded := false
	hasDeleted := false

	for _, file := range dir.files {
		switch file.ChangeType {
		case Added:
			hasAdded = true
		case Deleted:
			hasDeleted = true
		}
	}

	for _, subdir := range dir.subdirs {
		switch dirChangeType(subdir) {
		case Added:
			hasAdded = true
		case Deleted:
			hasDeleted = true
		}
	}

	if hasAdded && !hasDeleted {
		return Added
	}
	if hasDeleted && !hasAdded {
		return Deleted
	}
	return Modified
}
