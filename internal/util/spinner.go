package util

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// StartSpinner shows a terminal spinner with the given message and returns
// a stop function. On a non-interactive stderr it is a no-op.
func StartSpinner(message string) func() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
