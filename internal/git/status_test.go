package git

import (
	"strings"
	"testing"
)

func record(parts ...string) string {
	return strings.Join(parts, " ")
}

func zJoin(records ...string) []byte {
	return []byte(strings.Join(records, "\x00") + "\x00")
}

func TestParsePorcelainV2ZClassifiesKinds(t *testing.T) {
	data := zJoin(
		record("1", ".M", "N...", "100644", "100644", "100644", "aaaa", "bbbb", "changed.go"),
		record("1", "A.", "N...", "000000", "100644", "100644", "0000", "cccc", "new.go"),
		record("1", ".D", "N...", "100644", "100644", "000000", "dddd", "eeee", "gone.go"),
		"? notes.txt",
	)

	entries := parsePorcelainV2Z(data)
	if len(entries) != 4 {
		t.Fatalf("entry count = %d, want 4", len(entries))
	}

	want := []struct {
		path string
		kind ChangeKind
	}{
		{"changed.go", KindModified},
		{"new.go", KindAdded},
		{"gone.go", KindDeleted},
		{"notes.txt", KindUntracked},
	}
	for i, w := range want {
		if entries[i].Path != w.path {
			t.Fatalf("entry %d path = %q, want %q", i, entries[i].Path, w.path)
		}
		if entries[i].Kind != w.kind {
			t.Fatalf("entry %d kind = %v, want %v", i, entries[i].Kind, w.kind)
		}
	}
}

func TestParsePorcelainV2ZRenameConsumesOriginPath(t *testing.T) {
	data := zJoin(
		record("2", "R.", "N...", "100644", "100644", "100644", "aaaa", "bbbb", "R100", "renamed.go"),
		"original.go",
		"? extra.txt",
	)

	entries := parsePorcelainV2Z(data)
	if len(entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(entries))
	}
	if entries[0].Kind != KindRenamed || entries[0].Path != "renamed.go" {
		t.Fatalf("entry 0 = %+v, want renamed.go/Renamed", entries[0])
	}
	if entries[1].Kind != KindUntracked || entries[1].Path != "extra.txt" {
		t.Fatalf("entry 1 = %+v, want extra.txt/Untracked", entries[1])
	}
}

func TestParsePorcelainV2ZKeepsSpacesAndUnicodeInPaths(t *testing.T) {
	data := zJoin(
		record("1", ".M", "N...", "100644", "100644", "100644", "aaaa", "bbbb", "dir name/日本語 ファイル.txt"),
		"? with space.txt",
	)

	entries := parsePorcelainV2Z(data)
	if len(entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(entries))
	}
	if entries[0].Path != "dir name/日本語 ファイル.txt" {
		t.Fatalf("path = %q, want spaces and unicode preserved", entries[0].Path)
	}
	if entries[1].Path != "with space.txt" {
		t.Fatalf("untracked path = %q, want %q", entries[1].Path, "with space.txt")
	}
}

func TestParsePorcelainV2ZUnknownRecordBecomesUnparseable(t *testing.T) {
	data := zJoin(
		"x garbage record",
		"? fine.txt",
	)

	entries := parsePorcelainV2Z(data)
	if len(entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(entries))
	}
	if entries[0].Kind != KindUnparseable {
		t.Fatalf("entry 0 kind = %v, want Unparseable", entries[0].Kind)
	}
	if entries[0].RawStatus != "x garbage record" {
		t.Fatalf("raw status = %q, want full record", entries[0].RawStatus)
	}
	if entries[1].Kind != KindUntracked {
		t.Fatalf("entry 1 kind = %v, want Untracked", entries[1].Kind)
	}
}

func TestParsePorcelainV2ZSkipsIgnoredAndHeaders(t *testing.T) {
	data := zJoin(
		"# branch.head main",
		"! build/cache.bin",
		"? kept.txt",
	)

	entries := parsePorcelainV2Z(data)
	if len(entries) != 1 {
		t.Fatalf("entry count = %d, want 1", len(entries))
	}
	if entries[0].Path != "kept.txt" {
		t.Fatalf("path = %q, want kept.txt", entries[0].Path)
	}
}

func TestGroupedOrdersByKind(t *testing.T) {
	entries := []ChangeEntry{
		{Path: "u.txt", Kind: KindUntracked},
		{Path: "m.go", Kind: KindModified},
		{Path: "a.go", Kind: KindAdded},
		{Path: "m2.go", Kind: KindModified},
	}

	groups := Grouped(entries)
	if len(groups) != len(KindOrder) {
		t.Fatalf("group count = %d, want %d", len(groups), len(KindOrder))
	}
	if len(groups[0]) != 1 || groups[0][0].Path != "a.go" {
		t.Fatalf("added group = %+v, want [a.go]", groups[0])
	}
	if len(groups[1]) != 2 || groups[1][0].Path != "m.go" || groups[1][1].Path != "m2.go" {
		t.Fatalf("modified group = %+v, want [m.go m2.go]", groups[1])
	}
	if len(groups[4]) != 1 || groups[4][0].Path != "u.txt" {
		t.Fatalf("untracked group = %+v, want [u.txt]", groups[4])
	}
}
