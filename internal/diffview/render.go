package diffview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderConfig is the explicit rendering configuration; there is no
// package-level toggle.
type RenderConfig struct {
	ColorEnabled bool
	ContextLines int
}

// Renderer turns diff rows into terminal lines. Added lines carry a "+"
// marker (green), removed lines "-" (red); context lines keep both line
// numbers for orientation.
type Renderer struct {
	cfg RenderConfig

	fileStyle lipgloss.Style
	hunkStyle lipgloss.Style
	addStyle  lipgloss.Style
	delStyle  lipgloss.Style
	ctxStyle  lipgloss.Style
}

func NewRenderer(cfg RenderConfig) *Renderer {
	r := &Renderer{cfg: cfg}
	if cfg.ColorEnabled {
		r.fileStyle = lipgloss.NewStyle().Bold(true)
		r.hunkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
		r.addStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
		r.delStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		r.ctxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	} else {
		plain := lipgloss.NewStyle()
		r.fileStyle = plain
		r.hunkStyle = plain
		r.addStyle = plain
		r.delStyle = plain
		r.ctxStyle = plain
	}
	return r
}

// Render returns one terminal line per row. Zero rows render to zero
// lines; callers decide how to present an empty diff.
func (r *Renderer) Render(rows []DiffRow) []string {
	maxOld := 0
	maxNew := 0
	for _, row := range rows {
		if row.OldLine != nil && *row.OldLine > maxOld {
			maxOld = *row.OldLine
		}
		if row.NewLine != nil && *row.NewLine > maxNew {
			maxNew = *row.NewLine
		}
	}
	oldW := max(3, digits(maxOld))
	newW := max(3, digits(maxNew))

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, r.renderRow(row, oldW, newW))
	}
	return lines
}

func (r *Renderer) renderRow(row DiffRow, oldW, newW int) string {
	switch row.Kind {
	case RowFileHeader:
		return r.fileStyle.Render(row.Text)
	case RowHunkHeader:
		return r.hunkStyle.Render(row.Text)
	}

	marker := ' '
	style := r.ctxStyle
	switch row.Kind {
	case RowAdd:
		marker = '+'
		style = r.addStyle
	case RowDelete:
		marker = '-'
		style = r.delStyle
	}

	line := fmt.Sprintf("%c %*s %*s  %s",
		marker, oldW, lineNum(row.OldLine), newW, lineNum(row.NewLine), row.Text)
	return style.Render(line)
}

func lineNum(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%d", *n)
}

// BinaryNotice is the stand-in body shown instead of a line diff when
// either side of a modified pair is binary.
func (r *Renderer) BinaryNotice(path string) string {
	return r.hunkStyle.Render(fmt.Sprintf("Binary files differ: %s", path))
}

// EmptyNotice is shown when a selected entry produces no diff rows.
func (r *Renderer) EmptyNotice(path string) string {
	return r.ctxStyle.Render(fmt.Sprintf("No textual changes in %s", path))
}

// Join renders rows straight to a displayable block.
func (r *Renderer) Join(rows []DiffRow) string {
	return strings.Join(r.Render(rows), "\n")
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}
