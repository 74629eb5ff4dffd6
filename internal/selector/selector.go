package selector

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Parse interprets a selection line against bound known indices. The
// grammar accepts single integers, comma- or whitespace-separated lists,
// and inclusive a-b ranges. Bad tokens yield one error each and never
// abort the rest of the selection. Results are 1-based, deduplicated,
// ascending.
func Parse(input string, bound int) ([]int, []error) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	seen := make(map[int]bool)
	var errs []error

	for _, tok := range tokens {
		lo, hi, err := parseToken(tok)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if lo < 1 || hi > bound {
			errs = append(errs, fmt.Errorf("selection %q is out of range (1-%d)", tok, bound))
			continue
		}
		for n := lo; n <= hi; n++ {
			seen[n] = true
		}
	}

	picks := make([]int, 0, len(seen))
	for n := range seen {
		picks = append(picks, n)
	}
	sort.Ints(picks)
	return picks, errs
}

func parseToken(tok string) (int, int, error) {
	// A range separator only counts after the first rune, so a plain
	// negative number still fails as one token, not a malformed range.
	if i := strings.Index(tok[1:], "-"); i >= 0 {
		loStr, hiStr := tok[:i+1], tok[i+2:]
		lo, err := strconv.Atoi(loStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid selection %q", tok)
		}
		hi, err := strconv.Atoi(hiStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid selection %q", tok)
		}
		if hi < lo {
			return 0, 0, fmt.Errorf("invalid range %q: end before start", tok)
		}
		return lo, hi, nil
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid selection %q", tok)
	}
	return n, n, nil
}
