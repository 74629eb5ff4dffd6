package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workdiff/internal/util"
)

type DiffService interface {
	WorkingDiff(ctx context.Context, cwd, path string, contextLines int) (string, error)
}

type diffService struct{}

func NewDiffService() DiffService {
	return diffService{}
}

// WorkingDiff returns the unified diff of all uncommitted changes to path.
// The path travels as a single argv element after "--", so spaces and
// unicode survive the round trip from status output unchanged.
func (diffService) WorkingDiff(ctx context.Context, cwd, path string, contextLines int) (string, error) {
	out, err := util.Run(ctx, cwd, "git", "diff", "HEAD", fmt.Sprintf("-U%d", contextLines), "--", path)
	if err != nil {
		var exitErr *util.ExitError
		if !errors.As(err, &exitErr) {
			return "", err
		}
		// HEAD does not resolve in a repository with no commits yet; the
		// no-index path below still produces a whole-file diff.
	} else if strings.TrimSpace(out) != "" {
		return out, nil
	}

	// Fallback for untracked paths; --no-index exits 1 when a diff exists.
	noIndexOut, code, err := util.RunExitCode(ctx, cwd, "git", "diff", "--no-index",
		fmt.Sprintf("-U%d", contextLines), "--", "/dev/null", path)
	if err != nil {
		return "", err
	}
	if code == 0 || code == 1 {
		return noIndexOut, nil
	}

	// The path can't be diffed this way; treat as no diff.
	return "", nil
}
