package output

import (
	"strings"
)

// Description alignment column for file listings.
const descriptionColumn = 30

// FileEntry pairs a file path with a short description.
type FileEntry struct {
	Path        string
	Description string
}

// RenderFileList renders touched files with descriptions aligned at a fixed
// column. Paths longer than the column get two spaces before the description.
func RenderFileList(entries []FileEntry) string {
	var sb strings.Builder

	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(StyleNoun.Render(e.Path))
		if e.Description != "" {
			padding := descriptionColumn - len(e.Path)
			if padding < 2 {
				padding = 2
			}
			sb.WriteString(strings.Repeat(" ", padding))
			sb.WriteString(StyleDim.Render(e.Description))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
