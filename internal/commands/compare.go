package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"workdiff/internal/compare"
	"workdiff/internal/diffview"
	"workdiff/internal/preview"
	"workdiff/internal/selector"
	"workdiff/internal/util"
)

type targetKind int

const (
	targetProOnly targetKind = iota
	targetDevOnly
	targetModified
)

type compareTarget struct {
	kind targetKind
	path string
}

func newCompareCommand() *cobra.Command {
	var proPath, devPath string

	cmd := &cobra.Command{
		Use:   "compare --pro <path> --dev <path>",
		Short: "Compare a production tree against a development tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), proPath, devPath)
		},
	}

	cmd.Flags().StringVar(&proPath, "pro", "", "Path to the production (stable) tree")
	cmd.Flags().StringVar(&devPath, "dev", "", "Path to the development tree")
	_ = cmd.MarkFlagRequired("pro")
	_ = cmd.MarkFlagRequired("dev")
	return cmd
}

func runCompare(ctx context.Context, in io.Reader, out io.Writer, proPath, devPath string) error {
	s := newStyles(colorEnabled())
	printHeader(out, s, "Directory comparison")
	fmt.Fprintln(out, s.proLabel.Render("PRO (stable):      "+proPath))
	fmt.Fprintln(out, s.devLabel.Render("DEV (development): "+devPath))
	fmt.Fprintln(out)

	stop := util.StartSpinner("Scanning directories...")
	res, err := compare.Compare(proPath, devPath)
	stop()
	if err != nil {
		return err
	}

	printCompareSummary(out, res)

	targets := printCompareSections(out, s, res)
	if len(targets) == 0 {
		fmt.Fprintln(out, s.good.Render("No differences to inspect."))
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, s.muted.Render("Enter numbers (e.g. 1,3-5) to inspect; q or empty line quits."))

	renderer := diffview.NewRenderer(diffview.RenderConfig{
		ColorEnabled: colorEnabled(),
		ContextLines: flagContext,
	})

	loop := selector.NewLoop(in, out, len(targets))
	return loop.Run(ctx, func(index int) error {
		return showCompareTarget(out, s, renderer, res, targets[index-1])
	})
}

func printCompareSummary(out io.Writer, res *compare.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Category", "Count"})
	t.AppendRows([]table.Row{
		{"Identical", res.Identical},
		{"PRO only", len(res.ProOnly)},
		{"DEV only", len(res.DevOnly)},
		{"Modified", len(res.Modified)},
		{"Type mismatch", len(res.TypeMismatch)},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Fprintln(out)
}

// printCompareSections lists the actionable paths in fixed section order
// with continuous indices; empty sections are omitted. Type mismatches
// are listed last and are not selectable, since neither side has a single
// regular file to diff or preview.
func printCompareSections(out io.Writer, s styles, res *compare.Result) []compareTarget {
	total := len(res.ProOnly) + len(res.DevOnly) + len(res.Modified)
	width := len(strconv.Itoa(total))
	targets := make([]compareTarget, 0, total)
	index := 1

	appendSection := func(title string, style lipgloss.Style, kind targetKind, paths []string) {
		if len(paths) == 0 {
			return
		}
		fmt.Fprintf(out, "%s\n", style.Render(fmt.Sprintf("%s (%d)", title, len(paths))))
		for _, p := range paths {
			fmt.Fprintf(out, "  [%*d] %s\n", width, index, style.Render(p))
			targets = append(targets, compareTarget{kind: kind, path: p})
			index++
		}
		fmt.Fprintln(out)
	}

	appendSection("PRO ONLY", s.proLabel, targetProOnly, res.ProOnly)
	appendSection("DEV ONLY", s.devLabel, targetDevOnly, res.DevOnly)
	appendSection("MODIFIED", s.modified, targetModified, res.Modified)

	if len(res.TypeMismatch) > 0 {
		fmt.Fprintf(out, "%s\n", s.deleted.Render(fmt.Sprintf("TYPE MISMATCH (%d)", len(res.TypeMismatch))))
		for _, p := range res.TypeMismatch {
			fmt.Fprintf(out, "  %s %s\n", s.deleted.Render("[!]"), p)
		}
		fmt.Fprintln(out)
	}

	return targets
}

func showCompareTarget(out io.Writer, s styles, renderer *diffview.Renderer, res *compare.Result, t compareTarget) error {
	proFile := filepath.Join(res.ProRoot, filepath.FromSlash(t.path))
	devFile := filepath.Join(res.DevRoot, filepath.FromSlash(t.path))

	switch t.kind {
	case targetProOnly:
		body, err := preview.File(proFile, preview.Options{ColorEnabled: colorEnabled()})
		if err != nil {
			return err
		}
		return display(out, s, "PRO only: "+t.path, body)

	case targetDevOnly:
		body, err := preview.File(devFile, preview.Options{ColorEnabled: colorEnabled()})
		if err != nil {
			return err
		}
		return display(out, s, "DEV only: "+t.path, body)

	default:
		proData, err := os.ReadFile(proFile)
		if err != nil {
			return err
		}
		devData, err := os.ReadFile(devFile)
		if err != nil {
			return err
		}
		if preview.IsBinary(proData) || preview.IsBinary(devData) {
			return display(out, s, "Diff (PRO → DEV): "+t.path, renderer.BinaryNotice(t.path))
		}

		rows, err := diffview.GenerateRows(t.path, string(proData), string(devData), flagContext)
		if err != nil {
			return err
		}
		body := renderer.Join(rows)
		if len(rows) == 0 {
			body = renderer.EmptyNotice(t.path)
		}
		return display(out, s, "Diff (PRO → DEV): "+t.path, body)
	}
}
