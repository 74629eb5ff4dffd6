package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	flagNoColor bool
	flagContext int
	flagNoPager bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workdiff",
		Short: "Working-tree status review and directory comparison",
		Long: `workdiff assists manual release workflows: "check" reviews git
working-tree changes with inline diff inspection, and "compare" classifies
the differences between a production tree and a development tree.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI colors")
	cmd.PersistentFlags().IntVar(&flagContext, "context", 3, "Context lines in rendered diffs")
	cmd.PersistentFlags().BoolVar(&flagNoPager, "no-pager", false, "Print diffs inline instead of paging")

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newCompareCommand())
	return cmd
}

// Execute runs the root command; any error is reported as a one-line
// message before a non-zero exit.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		// After the first signal cancels the context, restore the default
		// disposition so a repeat interrupt terminates immediately.
		<-ctx.Done()
		stop()
	}()
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
