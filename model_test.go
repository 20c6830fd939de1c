package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModel(t *testing.T) {
	model := NewModel(nil, nil)

	if model.panel != FileTreePanel {
		t.Errorf("NewModel() panel = %v, want %v", model.panel, FileTreePanel)
	}
	if model.diffMode != Unstaged {
		t.Errorf("NewModel() diffMode = %v, want %v", model.diffMode, Unstaged)
	}
	if model.diffViewMode != DiffOnly {
		t.Errorf("NewModel() diffViewMode = %v, want %v", model.diffViewMode, DiffOnly)
	}
	if model.scrollOffset != 0 {
		t.Errorf("NewModel() scrollOffset = %v, want 0", model.scrollOffset)
	}
	if model.diffScroll != 0 {
		t.Errorf("NewModel() diffScroll = %v, want 0", model.diffScroll)
	}
	if model.highlighter == nil {
		t.Error("NewModel() highlighter is nil")
	}
}

func TestModelInit(t *testing.T) {
	model := NewModel(nil, nil)

	cmd := model.Init()
	if cmd == nil {
		t.Error("Model.Init() returned nil command")
	}
}

func TestModelUpdateQuit(t *testing.T) {
	model := NewModel(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	newModel, cmd := model.Update(msg)

	if cmd == nil {
		t.Error("Update('q') should return a quit command")
	}
	if !newModel.(Model).quitting {
		t.Error("Update('q') should set quitting to true")
	}
}

func TestModelUpdateCtrlC(t *testing.T) {
	model := NewModel(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	newModel, cmd := model.Update(msg)

	if cmd == nil {
		t.Error("Update(ctrl+c) should return a quit command")
	}
	if !newModel.(Model).quitting {
		t.Error("Update(ctrl+c) should set quitting to true")
	}
}

func TestModelUpdateNavigation(t *testing.T) {
	model := NewModel(nil, nil)
	model.height = 24
	model.files = []FileDiff{
		{Path: "file1.txt"},
		{Path: "file2.txt"},
		{Path: "file3.txt"},
	}
	model.buildFileTree()

	msg := tea.KeyMsg{Type: tea.KeyDown}
	newModel, _ := model.Update(msg)

	if newModel.(Model).selectedIndex != 1 {
		t.Errorf("Update(down) selectedIndex = %v, want 1", newModel.(Model).selectedIndex)
	}

	msg = tea.KeyMsg{Type: tea.KeyUp}
	newModel, _ = newModel.Update(msg)

	if newModel.(Model).selectedIndex != 0 {
		t.Errorf("Update(up) selectedIndex = %v, want 0", newModel.(Model).selectedIndex)
	}
}

func TestModelUpdateToggleStaged(t *testing.T) {
	model := NewModel(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}
	newModel, _ := model.Update(msg)

	if newModel.(Model).diffMode != Staged {
		t.Errorf("Update('s') diffMode = %v, want %v", newModel.(Model).diffMode, Staged)
	}

	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}
	newModel, _ = newModel.Update(msg)

	if newModel.(Model).diffMode != Unstaged {
		t.Errorf("Update('s') second toggle diffMode = %v, want %v", newModel.(Model).diffMode, Unstaged)
	}
}

func TestModelUpdateToggleViewMode(t *testing.T) {
	model := NewModel(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}
	newModel, _ := model.Update(msg)

	if newModel.(Model).diffViewMode != WholeFile {
		t.Errorf("Update('f') diffViewMode = %v, want %v", newModel.(Model).diffViewMode, WholeFile)
	}

	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}
	newModel, _ = newModel.Update(msg)

	if newModel.(Model).diffViewMode != DiffOnly {
		t.Errorf("Update('f') second toggle diffViewMode = %v, want %v", newModel.(Model).diffViewMode, DiffOnly)
	}
}

func TestModelUpdateTogglePanel(t *testing.T) {
	model := NewModel(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyTab}
	newModel, _ := model.Update(msg)

	if newModel.(Model).panel != DiffPanel {
		t.Errorf("Update(tab) panel = %v, want %v", newModel.(Model).panel, DiffPanel)
	}

	msg = tea.KeyMsg{Type: tea.KeyTab}
	newModel, _ = newModel.Update(msg)

	if newModel.(Model).panel != FileTreePanel {
		t.Errorf("Update(tab) second toggle panel = %v, want %v", newModel.(Model).panel, FileTreePanel)
	}
}

func TestModelUpdateHelpToggle(t *testing.T) {
	model := NewModel(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	newModel, _ := model.Update(msg)

	if !newModel.(Model).showHelp {
		t.Error("Update('?') should show help")
	}

	msg = tea.KeyMsg{Type: tea.KeyEsc}
	newModel, _ = newModel.Update(msg)

	if newModel.(Model).showHelp {
		t.Error("Update(esc) should hide help")
	}
}

func TestModelWindowSize(t *testing.T) {
	model := NewModel(nil, nil)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	newModel, _ := model.Update(msg)

	m := newModel.(Model)
	if m.width != 80 {
		t.Errorf("Update(WindowSizeMsg) width = %v, want 80", m.width)
	}
	if m.height != 24 {
		t.Errorf("Update(WindowSizeMsg) height = %v, want 24", m.height)
	}
}

func TestGetTotalStats(t *testing.T) {
	model := NewModel(nil, nil)

	model.diffFiles = []FileDiff{
		{Path: "file1.txt", LinesAdded: 5, LinesRemoved: 2},
		{Path: "file2.txt", LinesAdded: 10, LinesRemoved: 3},
		{Path: "file3.txt", LinesAdded: 1, LinesRemoved: 0},
	}

	files, added, removed := model.GetTotalStats()

	if files != 3 {
		t.Errorf("GetTotalStats() files = %v, want 3", files)
	}
	if added != 16 {
		t.Errorf("GetTotalStats() added = %v, want 16", added)
	}
	if removed != 5 {
		t.Errorf("GetTotalStats() removed = %v, want 5", removed)
	}
}

func TestGetTotalStatsEmpty(t *testing.T) {
	model := NewModel(nil, nil)

	files, added, removed := model.GetTotalStats()

	if files != 0 || added != 0 || removed != 0 {
		t.Errorf("GetTotalStats() empty = (%v, %v, %v), want all zero", files, added, removed)
	}
}

func TestFilesLoadedMsg(t *testing.T) {
	model := NewModel(nil, nil)

	files := []FileDiff{
		{Path: "file1.txt", ChangeType: Modified},
		{Path: "file2.txt", ChangeType: Added},
	}

	newModel, _ := model.Update(filesLoadedMsg{files: files})

	m := newModel.(Model)
	if len(m.files) != 2 {
		t.Errorf("filesLoadedMsg files length = %v, want 2", len(m.files))
	}
	if len(m.fileTree) != 2 {
		t.Errorf("filesLoadedMsg should rebuild the tree, got %v nodes", len(m.fileTree))
	}
}

func TestAllDiffsLoadedMsg(t *testing.T) {
	model := NewModel(nil, nil)

	files := []FileDiff{
		{Path: "file1.txt", LinesAdded: 5},
		{Path: "file2.txt", LinesAdded: 3},
	}

	newModel, _ := model.Update(allDiffsLoadedMsg{files: files})

	m := newModel.(Model)
	if len(m.diffFiles) != 2 {
		t.Errorf("allDiffsLoadedMsg diffFiles length = %v, want 2", len(m.diffFiles))
	}
}

func TestGitInfoMsg(t *testing.T) {
	model := NewModel(nil, nil)

	newModel, _ := model.Update(gitInfoMsg{rootPath: "/test/path", branch: "main"})

	m := newModel.(Model)
	if m.rootPath != "/test/path" {
		t.Errorf("gitInfoMsg rootPath = %v, want /test/path", m.rootPath)
	}
	if m.branch != "main" {
		t.Errorf("gitInfoMsg branch = %v, want main", m.branch)
	}
}

func TestErrMsg(t *testing.T) {
	model := NewModel(nil, nil)

	testErr := &testError{msg: "test error"}
	newModel, _ := model.Update(errMsg{err: testErr})

	m := newModel.(Model)
	if m.err == nil {
		t.Fatal("errMsg should set error")
	}
	if m.err.Error() != "test error" {
		t.Errorf("errMsg error = %v, want 'test error'", m.err)
	}
}

func TestClearErrorMsg(t *testing.T) {
	model := NewModel(nil, nil)
	model.err = &testError{msg: "test error"}

	newModel, _ := model.Update(clearErrorMsg{})

	m := newModel.(Model)
	if m.err != nil {
		t.Errorf("clearErrorMsg should clear error, got %v", m.err)
	}
}

func TestBuildFileTree(t *testing.T) {
	model := NewModel(nil, nil)

	model.files = []FileDiff{
		{Path: "src/main.go", ChangeType: Modified, LinesAdded: 5, LinesRemoved: 2},
		{Path: "src/utils.go", ChangeType: Added, LinesAdded: 10, LinesRemoved: 0},
		{Path: "README.md", ChangeType: Modified, LinesAdded: 1, LinesRemoved: 1},
	}

	model.buildFileTree()

	if len(model.fileTree) != 2 { // src/ and README.md
		t.Fatalf("buildFileTree() tree length = %v, want 2", len(model.fileTree))
	}
	if !model.fileTree[0].isDir {
		t.Error("First item should be a directory")
	}
	if model.fileTree[1].isDir {
		t.Error("Second item should not be a directory")
	}
	if model.fileTree[1].path != "README.md" {
		t.Errorf("Second item path = %v, want README.md", model.fileTree[1].path)
	}
}

func TestBuildFileTreeAutoExpandsSingleDir(t *testing.T) {
	model := NewModel(nil, nil)

	model.files = []FileDiff{
		{Path: "src/main.go", ChangeType: Modified},
		{Path: "src/utils.go", ChangeType: Added},
	}

	model.buildFileTree()

	if len(model.fileTree) != 1 {
		t.Fatalf("buildFileTree() tree length = %v, want 1", len(model.fileTree))
	}
	if !model.fileTree[0].isExpanded {
		t.Error("a single top-level directory should be auto-expanded")
	}
}

func TestFlattenTree(t *testing.T) {
	model := NewModel(nil, nil)

	model.files = []FileDiff{
		{Path: "src/main.go", ChangeType: Modified},
		{Path: "src/utils.go", ChangeType: Added},
		{Path: "README.md", ChangeType: Modified},
	}

	model.buildFileTree()
	model.fileTree[0].isExpanded = true

	flat := model.flattenTree()

	// src/, src/main.go, src/utils.go, README.md
	if len(flat) != 4 {
		t.Fatalf("flattenTree() length = %v, want 4", len(flat))
	}
	if flat[0].depth != 0 {
		t.Errorf("flattenTree()[0] depth = %v, want 0", flat[0].depth)
	}
	if flat[1].depth != 1 {
		t.Errorf("flattenTree()[1] depth = %v, want 1", flat[1].depth)
	}
}

func TestToggleDirectory(t *testing.T) {
	model := NewModel(nil, nil)

	model.files = []FileDiff{
		{Path: "src/main.go", ChangeType: Modified},
	}

	model.buildFileTree()
	model.fileTree[0].isExpanded = false

	model.toggleDirectory(model.fileTree[0].path)
	if !model.fileTree[0].isExpanded {
		t.Error("toggleDirectory() should expand directory")
	}

	model.toggleDirectory(model.fileTree[0].path)
	if model.fileTree[0].isExpanded {
		t.Error("toggleDirectory() should collapse directory")
	}
}

func TestGetDiffLineCount(t *testing.T) {
	model := NewModel(nil, nil)

	model.files = []FileDiff{{Path: "f.txt", ChangeType: Modified}}
	model.diffFiles = []FileDiff{
		{
			Path: "f.txt",
			Hunks: []Hunk{
				{Lines: []DiffLine{{Type: LineContext, Content: "a"}, {Type: LineAdded, Content: "b"}}},
				{Lines: []DiffLine{{Type: LineRemoved, Content: "c"}}},
			},
		},
	}
	model.buildFileTree()

	// One header row per hunk plus its body lines.
	if got := model.getDiffLineCount(); got != 5 {
		t.Errorf("getDiffLineCount() = %v, want 5", got)
	}
}

func TestDirChangeType(t *testing.T) {
	model := NewModel(nil, nil)

	model.files = []FileDiff{
		{Path: "pkg/a.go", ChangeType: Added},
		{Path: "pkg/b.go", ChangeType: Added},
	}
	model.buildFileTree()

	if model.fileTree[0].changeType != Added {
		t.Errorf("all-added directory changeType = %v, want Added", model.fileTree[0].changeType)
	}

	model.files = append(model.files, FileDiff{Path: "pkg/c.go", ChangeType: Deleted})
	model.buildFileTree()

	if model.fileTree[0].changeType != Modified {
		t.Errorf("mixed directory changeType = %v, want Modified", model.fileTree[0].changeType)
	}
}

// Helper types for testing

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
