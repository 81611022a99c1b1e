package grid

// Options configures column widths and resize bounds
type Options struct {
	// MinColumnWidth is the smallest width a resize can produce
	MinColumnWidth int
	// ResizeOffset is subtracted from the pointer position in ResizeColumn
	ResizeOffset int
	// Widths holds the initial width of each column
	Widths map[Column]int
	// FallbackWidth is reported for a column missing from Widths
	FallbackWidth int
}

// DefaultOptions returns pixel-based widths and bounds
func DefaultOptions() Options {
	return Options{
		MinColumnWidth: 60,
		ResizeOffset:   100,
		Widths: map[Column]int{
			ColumnName:   200,
			ColumnEmail:  250,
			ColumnStatus: 150,
		},
		FallbackWidth: 200,
	}
}

// Selection is the active cell. Row is an index into the current view.
type Selection struct {
	Row    int
	Column Column
}

// Direction is an arrow-key movement of the selection
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Grid owns the dataset and the interaction state around it.
// It is not safe for concurrent use; all calls come from the UI event loop.
type Grid struct {
	records   []*Record
	filter    Filter
	selection Selection

	widths        map[Column]int
	fallbackWidth int
	minWidth      int
	resizeOffset  int
	drag          *ResizeDrag
}

// New creates a grid holding copies of records
func New(records []Record, opts Options) *Grid {
	g := &Grid{
		records:       make([]*Record, 0, len(records)),
		widths:        make(map[Column]int, len(opts.Widths)),
		fallbackWidth: opts.FallbackWidth,
		minWidth:      opts.MinColumnWidth,
		resizeOffset:  opts.ResizeOffset,
		selection:     Selection{Row: 0, Column: ColumnName},
	}
	for i := range records {
		r := records[i]
		g.records = append(g.records, &r)
	}
	for c, w := range opts.Widths {
		g.widths[c] = w
	}
	return g
}

// Len returns the number of records in the dataset
func (g *Grid) Len() int {
	return len(g.records)
}

// Records returns a copy of the dataset in insertion order
func (g *Grid) Records() []Record {
	out := make([]Record, len(g.records))
	for i, r := range g.records {
		out[i] = *r
	}
	return out
}

// Record returns a copy of the dataset record at index i
func (g *Grid) Record(i int) (Record, bool) {
	if i < 0 || i >= len(g.records) {
		return Record{}, false
	}
	return *g.records[i], true
}

// Filter returns the active filter
func (g *Grid) Filter() Filter {
	return g.filter
}

// SetFilter replaces the active filter and clamps the selected row
// into the bounds of the new view.
func (g *Grid) SetFilter(f Filter) {
	g.filter = f
	g.selection.Row = clampRow(g.selection.Row, g.ViewLen())
}

// View returns the records matching the active filter in dataset order.
// The pointers refer to dataset records.
func (g *Grid) View() []*Record {
	view := make([]*Record, 0, len(g.records))
	for _, r := range g.records {
		if g.filter.Match(*r) {
			view = append(view, r)
		}
	}
	return view
}

// ViewLen returns the number of visible records
func (g *Grid) ViewLen() int {
	n := 0
	for _, r := range g.records {
		if g.filter.Match(*r) {
			n++
		}
	}
	return n
}

// AddRow appends a blank Active record and returns its dataset index
func (g *Grid) AddRow() int {
	g.records = append(g.records, &Record{Status: Active})
	return len(g.records) - 1
}

// EditCell applies edit to the record at viewRow.
// An out of range row is ignored and reported as false.
// A status edit can drop the record from the view; the selected row is
// then clamped into the smaller view.
func (g *Grid) EditCell(viewRow int, edit CellEdit) bool {
	if edit == nil {
		return false
	}
	view := g.View()
	if viewRow < 0 || viewRow >= len(view) {
		return false
	}
	edit.apply(view[viewRow])
	if n := g.ViewLen(); g.selection.Row >= n {
		g.selection.Row = clampRow(g.selection.Row, n)
	}
	return true
}

// Select sets the selection without bounds checking
func (g *Grid) Select(row int, col Column) {
	g.selection = Selection{Row: row, Column: col}
}

// Selection returns the active cell
func (g *Grid) Selection() Selection {
	return g.selection
}

// SelectedRecord returns the record under the selection, if the row is in view
func (g *Grid) SelectedRecord() (*Record, bool) {
	view := g.View()
	if g.selection.Row < 0 || g.selection.Row >= len(view) {
		return nil, false
	}
	return view[g.selection.Row], true
}

// MoveSelection moves the selection one step, clamped to the view and
// the column order. It never wraps.
func (g *Grid) MoveSelection(d Direction) {
	switch d {
	case Up:
		g.selection.Row = clampRow(g.selection.Row-1, g.ViewLen())
	case Down:
		g.selection.Row = clampRow(g.selection.Row+1, g.ViewLen())
	case Left:
		i := g.selection.Column.index() - 1
		if i < 0 {
			i = 0
		}
		g.selection.Column = columnOrder[i]
	case Right:
		i := g.selection.Column.index() + 1
		if i > len(columnOrder)-1 {
			i = len(columnOrder) - 1
		}
		g.selection.Column = columnOrder[i]
	}
}

// clampRow bounds row to [0, n-1]; an empty view clamps to 0
func clampRow(row, n int) int {
	if row > n-1 {
		row = n - 1
	}
	if row < 0 {
		row = 0
	}
	return row
}
