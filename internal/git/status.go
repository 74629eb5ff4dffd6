package git

import (
	"bytes"
	"context"
	"sort"
	"strings"

	"workdiff/internal/util"
)

// ChangeKind classifies one working-tree change.
type ChangeKind int

const (
	KindAdded ChangeKind = iota
	KindModified
	KindDeleted
	KindRenamed
	KindUntracked
	KindUnparseable
)

func (k ChangeKind) String() string {
	switch k {
	case KindAdded:
		return "Added"
	case KindModified:
		return "Modified"
	case KindDeleted:
		return "Deleted"
	case KindRenamed:
		return "Renamed"
	case KindUntracked:
		return "Untracked"
	default:
		return "Unparseable"
	}
}

// ChangeEntry is one changed path from git status. RawStatus keeps the
// porcelain XY field (or the whole record for unparseable entries).
type ChangeEntry struct {
	Path      string
	Kind      ChangeKind
	RawStatus string
}

type StatusService interface {
	ListChangedFiles(ctx context.Context, cwd string) ([]ChangeEntry, error)
}

type statusService struct{}

func NewStatusService() StatusService {
	return statusService{}
}

func (statusService) ListChangedFiles(ctx context.Context, cwd string) ([]ChangeEntry, error) {
	out, err := util.Run(ctx, cwd, "git", "status", "--porcelain=v2", "--untracked-files=all", "-z")
	if err != nil {
		return nil, err
	}

	entries := parsePorcelainV2Z([]byte(out))

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

// parsePorcelainV2Z splits NUL-separated porcelain v2 records. Records it
// cannot make sense of become KindUnparseable entries rather than failing
// the whole listing.
func parsePorcelainV2Z(data []byte) []ChangeEntry {
	records := bytes.Split(data, []byte{0})
	entries := make([]ChangeEntry, 0, len(records))

	for i := 0; i < len(records); i++ {
		rec := string(records[i])
		if rec == "" {
			continue
		}

		switch rec[0] {
		case '1', 'u':
			fields := strings.Fields(rec)
			if len(fields) < 2 {
				entries = append(entries, unparseable(rec))
				continue
			}
			// The path may contain spaces; it is everything after the
			// eight (or ten, for unmerged) fixed fields.
			path := pathAfterFields(rec, fixedFieldCount(rec[0]))
			if path == "" {
				entries = append(entries, unparseable(rec))
				continue
			}
			entries = append(entries, ChangeEntry{
				Path:      path,
				Kind:      kindFromXY(fields[1]),
				RawStatus: fields[1],
			})

		case '2':
			fields := strings.Fields(rec)
			if len(fields) < 2 {
				entries = append(entries, unparseable(rec))
				continue
			}
			path := pathAfterFields(rec, fixedFieldCount('2'))
			if path == "" {
				entries = append(entries, unparseable(rec))
				continue
			}
			entries = append(entries, ChangeEntry{
				Path:      path,
				Kind:      KindRenamed,
				RawStatus: fields[1],
			})
			if i+1 < len(records) {
				i++ // consume the original path record emitted for -z rename/copy entries
			}

		case '?':
			entries = append(entries, ChangeEntry{
				Path:      strings.TrimPrefix(rec, "? "),
				Kind:      KindUntracked,
				RawStatus: "??",
			})

		case '!', '#':
			continue

		default:
			entries = append(entries, unparseable(rec))
		}
	}

	return entries
}

func unparseable(rec string) ChangeEntry {
	return ChangeEntry{Path: rec, Kind: KindUnparseable, RawStatus: rec}
}

// fixedFieldCount is the number of space-separated fields before the path
// in a porcelain v2 record: 8 for ordinary ('1') records, 9 for rename and
// copy ('2') records (the extra Xscore field), 10 for unmerged ('u') ones.
func fixedFieldCount(recType byte) int {
	switch recType {
	case '2':
		return 9
	case 'u':
		return 10
	default:
		return 8
	}
}

func pathAfterFields(rec string, n int) string {
	rest := rec
	for i := 0; i < n; i++ {
		idx := strings.IndexByte(rest, ' ')
		if idx < 0 {
			return ""
		}
		rest = rest[idx+1:]
	}
	return rest
}

func kindFromXY(xy string) ChangeKind {
	switch {
	case strings.ContainsAny(xy, "A"):
		return KindAdded
	case strings.ContainsAny(xy, "D"):
		return KindDeleted
	case strings.ContainsAny(xy, "RC"):
		return KindRenamed
	default:
		return KindModified
	}
}

// KindOrder is the fixed presentation order for grouped listings.
var KindOrder = []ChangeKind{
	KindAdded,
	KindModified,
	KindDeleted,
	KindRenamed,
	KindUntracked,
	KindUnparseable,
}

// Grouped splits entries into KindOrder buckets, preserving order inside
// each bucket. Empty buckets stay empty rather than nil-checked away so
// callers can index by position.
func Grouped(entries []ChangeEntry) [][]ChangeEntry {
	groups := make([][]ChangeEntry, len(KindOrder))
	pos := make(map[ChangeKind]int, len(KindOrder))
	for i, k := range KindOrder {
		pos[k] = i
	}
	for _, e := range entries {
		i := pos[e.Kind]
		groups[i] = append(groups[i], e)
	}
	return groups
}
