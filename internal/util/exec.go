package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// StartError means the command never ran: the binary is missing or could
// not be launched. Callers treat this differently from a non-zero exit.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("could not run %s: %v", e.Name, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// ExitError means the command ran and exited non-zero.
type ExitError struct {
	Name   string
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command failed: %s %s: exit status %d", e.Name, strings.Join(e.Args, " "), e.Code)
	if e.Stderr != "" {
		msg += " (" + e.Stderr + ")"
	}
	return msg
}

// Run executes name with args in cwd and returns its stdout. Empty output
// on success is not an error.
func Run(ctx context.Context, cwd string, name string, args ...string) (string, error) {
	out, code, err := run(ctx, cwd, name, args...)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", &ExitError{Name: name, Args: args, Code: code, Stderr: out.stderr()}
	}
	return out.out.String(), nil
}

// RunExitCode is Run for tools that encode meaning in their exit code
// (git diff --no-index exits 1 when a diff exists). Only a launch failure
// is reported as an error.
func RunExitCode(ctx context.Context, cwd string, name string, args ...string) (string, int, error) {
	out, code, err := run(ctx, cwd, name, args...)
	if err != nil {
		return "", 0, err
	}
	return out.out.String(), code, nil
}

type capture struct {
	out bytes.Buffer
	err bytes.Buffer
}

func (c *capture) stderr() string { return strings.TrimSpace(c.err.String()) }

func run(ctx context.Context, cwd string, name string, args ...string) (*capture, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}

	c := &capture{}
	cmd.Stdout = &c.out
	cmd.Stderr = &c.err

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return c, exitErr.ExitCode(), nil
		}
		return nil, 0, &StartError{Name: name, Err: err}
	}
	return c, 0, nil
}
