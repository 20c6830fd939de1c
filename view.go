package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	content := m.renderContent(contentHeight(m.height))
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	var parts []string

	parts = append(parts, headerStyle.Render("better_patch"))
	if m.branch != "" {
		parts = append(parts, subtleStyle.Render(m.branch))
	}
	if m.rootPath != "" {
		parts = append(parts, subtleStyle.Render(m.rootPath))
	}

	modeText := "Unstaged"
	if m.diffMode == Staged {
		modeText = "Staged"
	}
	parts = append(parts, modeIndicatorStyle.Render("["+modeText+"]"))

	viewModeText := "Diff Only"
	if m.diffViewMode == WholeFile {
		viewModeText = "Whole File"
	}
	parts = append(parts, viewModeIndicatorStyle.Render("["+viewModeText+"]"))

	files, added, removed := m.GetTotalStats()
	if files > 0 {
		var stats string
		switch {
		case added > 0 && removed > 0:
			stats = fmt.Sprintf("%d files, +%d/-%d", files, added, removed)
		case added > 0:
			stats = fmt.Sprintf("%d files, +%d", files, added)
		case removed > 0:
			stats = fmt.Sprintf("%d files, -%d", files, removed)
		default:
			stats = fmt.Sprintf("%d files", files)
		}
		parts = append(parts, statsSubtleStyle.Render("("+stats+")"))
	}

	parts = append(parts, subtleStyle.Render("Press ? for help"))

	if m.err != nil {
		parts = append(parts, errorStyle.Render("error: "+m.err.Error()))
	}

	header := strings.Join(parts, " ")
	separator := headerSeparatorStyle.Render(strings.Repeat("─", max(0, m.width)))

	return lipgloss.JoinVertical(lipgloss.Left, header, separator)
}

func (m Model) renderContent(height int) string {
	// Whole file mode hides the file tree
	if m.diffViewMode == WholeFile {
		return m.renderDiffPanel(m.width, height)
	}

	leftWidth := fileTreeWidth(m.width)
	rightWidth := diffPanelWidth(m.width)

	leftPanel := m.renderFileTree(leftWidth, height)
	rightPanel := m.renderDiffPanel(rightWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
}

func (m Model) renderFileTree(width, height int) string {
	selectedLineStyle := fileTreeSelectedLineStyle.Width(width - 2)

	internalHeight := panelContentHeight(height)

	flatTree := m.flattenTree()
	start := clamp(m.scrollOffset, 0, len(flatTree))
	end := min(start+internalHeight, len(flatTree))
	visibleNodes := flatTree[start:end]

	var lines []string
	for i, node := range visibleNodes {
		globalIndex := start + i
		isSelected := globalIndex == m.selectedIndex

		prefix := strings.Repeat("  ", node.depth)
		if node.isDir {
			if node.isExpanded {
				prefix += "▼ "
			} else {
				prefix += "▶ "
			}
		} else {
			prefix += "  "
		}

		style := fileStyle
		if node.isDir {
			style = dirStyle
		}

		var indicator string
		switch node.changeType {
		case Added:
			indicator = "+"
			if !node.isDir {
				style = addedStyle
			}
		case Deleted:
			indicator = "-"
			if !node.isDir {
				style = deletedStyle
			}
		default:
			indicator = "●"
			if !node.isDir {
				style = modifiedStyle
			}
		}

		line := prefix + indicator + " " + node.name

		if !node.isDir && (node.linesAdded > 0 || node.linesRemoved > 0) {
			var stats string
			switch {
			case node.linesAdded > 0 && node.linesRemoved > 0:
				stats = fmt.Sprintf(" +%d/-%d", node.linesAdded, node.linesRemoved)
			case node.linesAdded > 0:
				stats = fmt.Sprintf(" +%d", node.linesAdded)
			default:
				stats = fmt.Sprintf(" -%d", node.linesRemoved)
			}
			line += statsStyle.Render(stats)
		}

		if isSelected && m.panel == FileTreePanel {
			line = selectedLineStyle.Render(line)
		} else {
			line = style.Render(line)
		}

		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")

	panelStyle := panelBaseStyle.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height)
	if m.panel == FileTreePanel {
		panelStyle = panelStyle.BorderForeground(colorBlue)
	}

	return panelStyle.Render(content)
}

func (m Model) renderDiffPanel(width, height int) string {
	selectedFile := m.selectedFile()

	var allLines []string
	switch {
	case selectedFile == nil:
		allLines = append(allLines, panelInfoStyle.Render("Select a file to view diff"))

	case len(selectedFile.Hunks) == 0:
		allLines = append(allLines, panelInfoStyle.Render("No diff content available (binary file or no changes)"))

	default:
		for _, hunk := range selectedFile.Hunks {
			header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
			allLines = append(allLines, diffHunkStyle.Render(header))

			for _, diffLine := range hunk.Lines {
				allLines = append(allLines, m.renderDiffLine(selectedFile.Path, diffLine))
			}
		}
	}

	internalHeight := panelContentHeight(height)

	start := clamp(m.diffScroll, 0, len(allLines))
	end := min(start+internalHeight, len(allLines))

	var lines []string
	if end > start {
		lines = allLines[start:end]
	}
	for len(lines) < internalHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	panelStyle := panelBaseStyle.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height)
	if m.panel == DiffPanel {
		panelStyle = panelStyle.BorderForeground(colorBlue)
	}

	return panelStyle.Render(content)
}

// renderDiffLine renders a single diff line with prefix and content styling.
// Context lines get syntax highlighting; added/removed lines keep plain
// diff colors so the change stands out.
func (m Model) renderDiffLine(path string, diffLine DiffLine) string {
	switch diffLine.Type {
	case LineAdded:
		return diffAddedPrefixStyle.Render("+") + " " + diffAddedStyle.Render(diffLine.Content)
	case LineRemoved:
		return diffRemovedPrefixStyle.Render("-") + " " + diffRemovedStyle.Render(diffLine.Content)
	default:
		content := diffLine.Content
		if m.highlighter != nil {
			content = m.highlighter.Highlight(path, content)
		}
		return diffContextStyle.Render(" ") + " " + content
	}
}

func (m Model) renderFooter() string {
	help := []string{
		footerKeyStyle.Render("[↑↓]") + " Navigate",
		footerKeyStyle.Render("[PgUp/PgDn]") + " Page",
		footerKeyStyle.Render("[Enter]") + " Select/Expand",
		footerKeyStyle.Render("[Tab]") + " Switch Panel",
		footerKeyStyle.Render("[s]") + " Staged/Unstaged",
		footerKeyStyle.Render("[f]") + " Diff/Whole File",
		footerKeyStyle.Render("[q]") + " Quit",
	}

	if m.panel == DiffPanel {
		totalLines := m.getDiffLineCount()
		if totalLines > 0 {
			scrollPercent := (m.diffScroll * 100) / totalLines
			help = append(help, footerScrollStyle.Render(fmt.Sprintf("Scroll: %d%%", scrollPercent)))
		}
	}

	return footerBaseStyle.Render(strings.Join(help, " • "))
}
