package diffview

import "testing"

func TestParseUnifiedDiffEmitsDeleteAndAddRows(t *testing.T) {
	raw := []byte(`diff --git a/sample.txt b/sample.txt
index 1111111..2222222 100644
--- a/sample.txt
+++ b/sample.txt
@@ -1,4 +1,5 @@
 keep
-oldA
-oldB
+newA
+newB
+newC
 tail
`)

	rows, err := ParseUnifiedDiff(raw)
	if err != nil {
		t.Fatalf("ParseUnifiedDiff returned error: %v", err)
	}

	wantKinds := []RowKind{
		RowFileHeader, RowHunkHeader,
		RowContext, RowDelete, RowDelete, RowAdd, RowAdd, RowAdd, RowContext,
	}
	if len(rows) != len(wantKinds) {
		t.Fatalf("row count = %d, want %d", len(rows), len(wantKinds))
	}
	for i, want := range wantKinds {
		if rows[i].Kind != want {
			t.Fatalf("row %d kind = %v, want %v", i, rows[i].Kind, want)
		}
	}

	assertLine(t, rows[2].OldLine, 1)
	assertLine(t, rows[2].NewLine, 1)
	assertLine(t, rows[3].OldLine, 2)
	assertLine(t, rows[4].OldLine, 3)
	assertLine(t, rows[5].NewLine, 2)
	assertLine(t, rows[7].NewLine, 4)
	assertLine(t, rows[8].OldLine, 4)
	assertLine(t, rows[8].NewLine, 5)

	if rows[3].NewLine != nil {
		t.Fatalf("delete row new line = %d, want nil", *rows[3].NewLine)
	}
	if rows[5].OldLine != nil {
		t.Fatalf("add row old line = %d, want nil", *rows[5].OldLine)
	}
	if rows[2].Path != "sample.txt" {
		t.Fatalf("path = %q, want sample.txt", rows[2].Path)
	}
}

func TestParseUnifiedDiffHandlesNewFile(t *testing.T) {
	raw := []byte(`diff --git a/new.txt b/new.txt
new file mode 100644
index 0000000..3b18e13
--- /dev/null
+++ b/new.txt
@@ -0,0 +1,2 @@
+line1
+line2
`)

	rows, err := ParseUnifiedDiff(raw)
	if err != nil {
		t.Fatalf("ParseUnifiedDiff returned error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("row count = %d, want 4", len(rows))
	}
	if rows[0].Kind != RowFileHeader || rows[0].Path != "new.txt" {
		t.Fatalf("file header = %+v, want new.txt", rows[0])
	}
	if rows[2].Kind != RowAdd || rows[3].Kind != RowAdd {
		t.Fatalf("expected add rows, got %v and %v", rows[2].Kind, rows[3].Kind)
	}
	assertLine(t, rows[2].NewLine, 1)
	assertLine(t, rows[3].NewLine, 2)
}

func TestParseUnifiedDiffEmptyInputYieldsNoRows(t *testing.T) {
	rows, err := ParseUnifiedDiff(nil)
	if err != nil {
		t.Fatalf("ParseUnifiedDiff returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("row count = %d, want 0", len(rows))
	}
}

func TestParseUnifiedDiffIgnoresNoNewlineMarker(t *testing.T) {
	raw := []byte(`--- a/x.txt
+++ b/x.txt
@@ -1 +1 @@
-old
\ No newline at end of file
+new
\ No newline at end of file
`)

	rows, err := ParseUnifiedDiff(raw)
	if err != nil {
		t.Fatalf("ParseUnifiedDiff returned error: %v", err)
	}
	var content []DiffRow
	for _, row := range rows {
		if row.Kind == RowAdd || row.Kind == RowDelete {
			content = append(content, row)
		}
	}
	if len(content) != 2 {
		t.Fatalf("content rows = %d, want 2", len(content))
	}
	if content[0].Text != "old" || content[1].Text != "new" {
		t.Fatalf("texts = %q/%q, want old/new", content[0].Text, content[1].Text)
	}
}

func assertLine(t *testing.T, got *int, want int) {
	t.Helper()
	if got == nil {
		t.Fatalf("line = nil, want %d", want)
	}
	if *got != want {
		t.Fatalf("line = %d, want %d", *got, want)
	}
}
