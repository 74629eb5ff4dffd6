package diffview

import (
	"fmt"
	"strings"

	sgdiff "github.com/sourcegraph/go-diff/diff"
)

// ParseUnifiedDiff turns raw unified-diff text into renderable rows.
// Empty input (two identical blobs) parses to zero rows.
func ParseUnifiedDiff(raw []byte) ([]DiffRow, error) {
	fileDiffs, err := sgdiff.ParseMultiFileDiff(raw)
	if err != nil {
		return nil, err
	}

	rows := make([]DiffRow, 0, 64)
	for _, fd := range fileDiffs {
		path := normalizePath(fd)
		rows = append(rows, DiffRow{
			Kind: RowFileHeader,
			Text: fmt.Sprintf("File: %s", path),
			Path: path,
		})

		for hunkID, h := range fd.Hunks {
			rows = append(rows, DiffRow{
				Kind:   RowHunkHeader,
				Text:   formatHunkHeader(h),
				Path:   path,
				HunkID: hunkID,
			})

			oldLn := int(h.OrigStartLine)
			newLn := int(h.NewStartLine)
			for _, line := range splitHunkBody(h.Body) {
				if line == "" {
					continue
				}
				switch line[0] {
				case ' ':
					rows = append(rows, DiffRow{
						Kind:    RowContext,
						OldLine: linePtr(oldLn),
						NewLine: linePtr(newLn),
						Text:    line[1:],
						Path:    path,
						HunkID:  hunkID,
					})
					oldLn++
					newLn++

				case '-':
					rows = append(rows, DiffRow{
						Kind:    RowDelete,
						OldLine: linePtr(oldLn),
						Text:    line[1:],
						Path:    path,
						HunkID:  hunkID,
					})
					oldLn++

				case '+':
					rows = append(rows, DiffRow{
						Kind:    RowAdd,
						NewLine: linePtr(newLn),
						Text:    line[1:],
						Path:    path,
						HunkID:  hunkID,
					})
					newLn++

				case '\\':
					// Ignore "\ No newline at end of file" marker lines.

				default:
					return nil, fmt.Errorf("unexpected hunk line prefix %q", line)
				}
			}
		}
	}
	return rows, nil
}

func formatHunkHeader(h *sgdiff.Hunk) string {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OrigStartLine, h.OrigLines, h.NewStartLine, h.NewLines)
	if h.Section != "" {
		header += " " + h.Section
	}
	return header
}

func normalizePath(fd *sgdiff.FileDiff) string {
	path := fd.NewName
	if path == "" || path == "/dev/null" {
		path = fd.OrigName
	}
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")
	return path
}

func splitHunkBody(body []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func linePtr(n int) *int {
	v := n
	return &v
}
