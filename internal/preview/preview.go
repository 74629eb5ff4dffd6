package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// binarySniffLen matches git's heuristic: a NUL byte in the first 8000
// bytes marks the content binary.
const binarySniffLen = 8000

func IsBinary(data []byte) bool {
	n := len(data)
	if n > binarySniffLen {
		n = binarySniffLen
	}
	return bytes.IndexByte(data[:n], 0) >= 0
}

type Options struct {
	ColorEnabled bool
}

// File reads path and returns a displayable body: syntax highlighted for
// text when color is enabled, or a one-line notice for binary content.
func File(path string, opts Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if IsBinary(data) {
		return fmt.Sprintf("(binary file, %d bytes)", len(data)), nil
	}
	if !opts.ColorEnabled {
		return string(data), nil
	}
	return highlight(path, string(data)), nil
}

func highlight(path, source string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	style := styles.Get("monokai")

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}
