package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workdiff/internal/util"
)

// DiscoverRepoRoot resolves the repository toplevel for cwd. An exit
// failure means cwd is not inside a working tree; that is reported as a
// plain operator-facing error rather than the raw git output.
func DiscoverRepoRoot(ctx context.Context, cwd string) (string, error) {
	out, err := util.Run(ctx, cwd, "git", "rev-parse", "--show-toplevel")
	if err != nil {
		var exitErr *util.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("not a git repository (or any parent up to filesystem root)")
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}
