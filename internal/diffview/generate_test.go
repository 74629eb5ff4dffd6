package diffview

import "testing"

func TestGenerateRowsIdenticalBodiesYieldNothing(t *testing.T) {
	rows, err := GenerateRows("a.txt", "X\nY\n", "X\nY\n", 3)
	if err != nil {
		t.Fatalf("GenerateRows returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("row count = %d, want 0 for identical bodies", len(rows))
	}
}

func TestGenerateRowsSingleLineChange(t *testing.T) {
	rows, err := GenerateRows("a.txt", "X", "X2", 3)
	if err != nil {
		t.Fatalf("GenerateRows returned error: %v", err)
	}

	var dels, adds []DiffRow
	for _, row := range rows {
		switch row.Kind {
		case RowDelete:
			dels = append(dels, row)
		case RowAdd:
			adds = append(adds, row)
		}
	}
	if len(dels) != 1 || dels[0].Text != "X" {
		t.Fatalf("deletes = %+v, want one removed line X", dels)
	}
	if len(adds) != 1 || adds[0].Text != "X2" {
		t.Fatalf("adds = %+v, want one added line X2", adds)
	}
}

func TestGenerateRowsDisjointBodiesHaveNoContext(t *testing.T) {
	rows, err := GenerateRows("a.txt", "one\ntwo\n", "alpha\nbeta\ngamma\n", 3)
	if err != nil {
		t.Fatalf("GenerateRows returned error: %v", err)
	}

	dels, adds, ctx := 0, 0, 0
	for _, row := range rows {
		switch row.Kind {
		case RowDelete:
			dels++
		case RowAdd:
			adds++
		case RowContext:
			ctx++
		}
	}
	if ctx != 0 {
		t.Fatalf("context rows = %d, want 0 for disjoint bodies", ctx)
	}
	if dels != 2 || adds != 3 {
		t.Fatalf("dels/adds = %d/%d, want 2/3", dels, adds)
	}
}

func TestGenerateRowsEmptyOldBody(t *testing.T) {
	rows, err := GenerateRows("a.txt", "", "fresh\n", 3)
	if err != nil {
		t.Fatalf("GenerateRows returned error: %v", err)
	}
	adds := 0
	for _, row := range rows {
		if row.Kind == RowAdd {
			adds++
		}
	}
	if adds == 0 {
		t.Fatal("expected at least one added row for new content")
	}
}
