package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"workdiff/internal/git"
	"workdiff/internal/pager"
)

const headerWidth = 60

type styles struct {
	header      lipgloss.Style
	proLabel    lipgloss.Style
	devLabel    lipgloss.Style
	good        lipgloss.Style
	muted       lipgloss.Style
	added       lipgloss.Style
	modified    lipgloss.Style
	deleted     lipgloss.Style
	renamed     lipgloss.Style
	untracked   lipgloss.Style
	unparseable lipgloss.Style
}

func newStyles(colorEnabled bool) styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return styles{
			header: plain, proLabel: plain, devLabel: plain,
			good: plain, muted: plain,
			added: plain, modified: plain, deleted: plain,
			renamed: plain, untracked: plain, unparseable: plain,
		}
	}
	return styles{
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		proLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		devLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		good:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		added:       lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		modified:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		deleted:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		renamed:     lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		untracked:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		unparseable: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

func (s styles) kind(k git.ChangeKind) lipgloss.Style {
	switch k {
	case git.KindAdded:
		return s.added
	case git.KindModified:
		return s.modified
	case git.KindDeleted:
		return s.deleted
	case git.KindRenamed:
		return s.renamed
	case git.KindUntracked:
		return s.untracked
	default:
		return s.unparseable
	}
}

func printHeader(out io.Writer, s styles, title string) {
	rule := strings.Repeat("=", headerWidth)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, s.header.Render("  "+title))
	fmt.Fprintln(out, rule)
}

func colorEnabled() bool {
	return !flagNoColor && isatty.IsTerminal(os.Stdout.Fd())
}

func pagerEnabled() bool {
	return !flagNoPager && isatty.IsTerminal(os.Stdout.Fd())
}

// display shows a block of pre-rendered content, in the pager when the
// terminal allows it, inline otherwise.
func display(out io.Writer, s styles, title, content string) error {
	if pagerEnabled() {
		return pager.Show(title, content)
	}
	printHeader(out, s, title)
	fmt.Fprintln(out, content)
	fmt.Fprintln(out)
	return nil
}
