package selector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// State is one phase of the read-select-act loop.
type State int

const (
	StateAwaitingInput State = iota
	StateValidating
	StateDispatching
	StateDone
)

const defaultPrompt = "select> "

// Loop drives interactive selection: it reads a line, validates it into
// indices, dispatches each index, and returns to reading. The quit token
// "q", an empty line, and end-of-input all reach StateDone.
type Loop struct {
	scanner *bufio.Scanner
	out     io.Writer
	bound   int
	prompt  string
}

func NewLoop(in io.Reader, out io.Writer, bound int) *Loop {
	return &Loop{
		scanner: bufio.NewScanner(in),
		out:     out,
		bound:   bound,
		prompt:  defaultPrompt,
	}
}

// Run executes the state machine until a terminal condition. Selection
// parse errors are reported inline and recovered; an error from dispatch
// is fatal and ends the loop. A cancelled context ends the loop cleanly
// even while a read is pending, so an interrupt at the prompt is never
// stuck behind stdin.
func (l *Loop) Run(ctx context.Context, dispatch func(index int) error) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		for l.scanner.Scan() {
			select {
			case lines <- l.scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- l.scanner.Err()
		close(lines)
	}()

	state := StateAwaitingInput
	var line string
	var picks []int

	for state != StateDone {
		switch state {
		case StateAwaitingInput:
			fmt.Fprint(l.out, l.prompt)
			select {
			case <-ctx.Done():
				return nil
			case text, ok := <-lines:
				if !ok {
					return <-scanErr
				}
				line = strings.TrimSpace(text)
			}
			if line == "" || strings.EqualFold(line, "q") {
				state = StateDone
				continue
			}
			state = StateValidating

		case StateValidating:
			var errs []error
			picks, errs = Parse(line, l.bound)
			for _, err := range errs {
				fmt.Fprintln(l.out, err)
			}
			if len(picks) == 0 {
				state = StateAwaitingInput
				continue
			}
			state = StateDispatching

		case StateDispatching:
			for _, idx := range picks {
				if err := dispatch(idx); err != nil {
					return err
				}
			}
			state = StateAwaitingInput
		}
	}

	return nil
}
