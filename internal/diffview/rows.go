package diffview

type RowKind int

const (
	RowContext RowKind = iota
	RowDelete
	RowAdd
	RowHunkHeader
	RowFileHeader
)

// DiffRow is one renderable line of a diff. Header rows carry their text
// in Text with nil line numbers; content rows carry the line number for
// whichever side(s) they exist on.
type DiffRow struct {
	Kind    RowKind
	OldLine *int
	NewLine *int
	Text    string
	Path    string
	HunkID  int
}
