package diffview

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// GenerateUnified produces unified-diff text for two file bodies, with
// a/ and b/ prefixed names so the output parses like git's. Identical
// inputs yield an empty string.
func GenerateUnified(path string, oldBody, newBody string, contextLines int) (string, error) {
	if contextLines < 0 {
		contextLines = 0
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldBody),
		B:        difflib.SplitLines(newBody),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}
	return text, nil
}

// GenerateRows is the in-process pipeline for the directory comparison
// mode: generate a unified diff and parse it into renderable rows.
func GenerateRows(path string, oldBody, newBody string, contextLines int) ([]DiffRow, error) {
	text, err := GenerateUnified(path, oldBody, newBody, contextLines)
	if err != nil {
		return nil, err
	}
	return ParseUnifiedDiff([]byte(text))
}
