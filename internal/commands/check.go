package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"workdiff/internal/diffview"
	"workdiff/internal/git"
	"workdiff/internal/preview"
	"workdiff/internal/selector"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Review working-tree changes and inspect their diffs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runCheck(ctx context.Context, in io.Reader, out io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	root, err := git.DiscoverRepoRoot(ctx, cwd)
	if err != nil {
		return err
	}

	entries, err := git.NewStatusService().ListChangedFiles(ctx, root)
	if err != nil {
		return err
	}

	s := newStyles(colorEnabled())
	printHeader(out, s, "Working tree status")

	if len(entries) == 0 {
		fmt.Fprintln(out, s.good.Render("No changes. The working tree is clean."))
		return nil
	}

	flat := printStatusGroups(out, s, entries)

	fmt.Fprintln(out)
	fmt.Fprintln(out, s.muted.Render("Enter numbers (e.g. 1,3-5) to view diffs; q or empty line quits."))

	renderer := diffview.NewRenderer(diffview.RenderConfig{
		ColorEnabled: colorEnabled(),
		ContextLines: flagContext,
	})
	diffSvc := git.NewDiffService()

	loop := selector.NewLoop(in, out, len(flat))
	return loop.Run(ctx, func(index int) error {
		return showChangeEntry(ctx, out, s, renderer, diffSvc, root, flat[index-1])
	})
}

// printStatusGroups lists entries grouped by kind with continuous 1-based
// indices and returns the entries in selection order.
func printStatusGroups(out io.Writer, s styles, entries []git.ChangeEntry) []git.ChangeEntry {
	fmt.Fprintln(out, s.modified.Render(fmt.Sprintf("%d changed file(s):", len(entries))))

	flat := make([]git.ChangeEntry, 0, len(entries))
	width := len(strconv.Itoa(len(entries)))
	index := 1

	for gi, group := range git.Grouped(entries) {
		if len(group) == 0 {
			continue
		}
		kind := git.KindOrder[gi]
		fmt.Fprintf(out, "\n%s\n", s.kind(kind).Render(fmt.Sprintf("%s (%d)", kind, len(group))))
		for _, entry := range group {
			label := entry.Path
			if entry.Kind == git.KindUnparseable {
				label = entry.RawStatus
			}
			fmt.Fprintf(out, "  [%*d] %s %s\n",
				width, index,
				s.kind(kind).Render(fmt.Sprintf("%-2s", entry.RawStatus)),
				label)
			flat = append(flat, entry)
			index++
		}
	}
	return flat
}

func showChangeEntry(
	ctx context.Context,
	out io.Writer,
	s styles,
	renderer *diffview.Renderer,
	diffSvc git.DiffService,
	root string,
	entry git.ChangeEntry,
) error {
	switch entry.Kind {
	case git.KindUntracked:
		// Untracked paths have no diff against HEAD worth showing; the
		// whole file body is the change.
		body, err := preview.File(filepath.Join(root, entry.Path), preview.Options{ColorEnabled: colorEnabled()})
		if err != nil {
			return err
		}
		return display(out, s, "Untracked file: "+entry.Path, body)

	case git.KindUnparseable:
		fmt.Fprintln(out, s.unparseable.Render(fmt.Sprintf("No diff for unparseable status record %q", entry.RawStatus)))
		return nil

	default:
		raw, err := diffSvc.WorkingDiff(ctx, root, entry.Path, flagContext)
		if err != nil {
			return err
		}
		rows, err := diffview.ParseUnifiedDiff([]byte(raw))
		if err != nil {
			return err
		}
		body := renderer.Join(rows)
		if len(rows) == 0 {
			body = renderer.EmptyNotice(entry.Path)
		}
		return display(out, s, "Diff: "+entry.Path, body)
	}
}
