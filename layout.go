package main

// Layout constants for the TUI
const (
	// Header and footer dimensions
	headerRows = 2 // title + separator
	footerRows = 1

	// Panel layout
	panelBorderRows    = 2 // rows consumed by panel borders (top + bottom)
	fileTreeWidthRatio = 3 // file tree gets 1/fileTreeWidthRatio of total width

	// Help modal dimensions
	helpModalMaxWidth  = 60
	helpModalMaxHeight = 30
	helpModalPadding   = 4 // 2 on each side
)

// contentHeight calculates the available content height given total height
func contentHeight(totalHeight int) int {
	return max(1, totalHeight-headerRows-footerRows)
}

// panelContentHeight calculates the content height inside a panel (accounting for borders)
func panelContentHeight(panelHeight int) int {
	return max(0, panelHeight-panelBorderRows)
}

// fileTreeWidth calculates the width for the file tree panel
func fileTreeWidth(totalWidth int) int {
	return totalWidth / fileTreeWidthRatio
}

// diffPanelWidth calculates the width for the diff panel
func diffPanelWidth(totalWidth int) int {
	return totalWidth - fileTreeWidth(totalWidth)
}

// helpModalDimensions calculates the dimensions for the help modal
func helpModalDimensions(screenWidth, screenHeight int) (width, height int) {
	width = min(helpModalMaxWidth, screenWidth-helpModalPadding)
	height = min(helpModalMaxHeight, screenHeight-helpModalPadding)
	return width, height
}
