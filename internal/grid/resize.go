package grid

import "errors"

// ErrResizeActive is returned by BeginResize while another drag is open
var ErrResizeActive = errors.New("column resize already in progress")

// ResizeDrag is an open column-resize gesture. It holds exclusive
// ownership of resizing until End is called.
type ResizeDrag struct {
	g      *Grid
	column Column
	origin int
	ended  bool
}

// ColumnWidth returns the width of c
func (g *Grid) ColumnWidth(c Column) int {
	if w, ok := g.widths[c]; ok {
		return w
	}
	return g.fallbackWidth
}

// ColumnWidths returns a copy of the width of every column
func (g *Grid) ColumnWidths() map[Column]int {
	out := make(map[Column]int, len(columnOrder))
	for _, c := range columnOrder {
		out[c] = g.ColumnWidth(c)
	}
	return out
}

// ResizeColumn sets the width of c from a pointer position using the
// configured offset: max(min, pointerX - offset). Drags call it with the
// pointer measured from their origin.
func (g *Grid) ResizeColumn(c Column, pointerX int) {
	g.setWidth(c, pointerX-g.resizeOffset)
}

// SetResizeBounds replaces the minimum width and resize offset
func (g *Grid) SetResizeBounds(minWidth, offset int) {
	g.minWidth = minWidth
	g.resizeOffset = offset
}

func (g *Grid) setWidth(c Column, w int) {
	if w < g.minWidth {
		w = g.minWidth
	}
	g.widths[c] = w
}

// BeginResize opens a drag on c. Pointer positions passed to Move are
// measured from originX, the left edge of the column.
func (g *Grid) BeginResize(c Column, originX int) (*ResizeDrag, error) {
	if g.drag != nil {
		return nil, ErrResizeActive
	}
	g.drag = &ResizeDrag{g: g, column: c, origin: originX}
	return g.drag, nil
}

// ActiveResize returns the column being resized, if any
func (g *Grid) ActiveResize() (Column, bool) {
	if g.drag == nil {
		return ColumnName, false
	}
	return g.drag.column, true
}

// Column returns the column the drag resizes
func (d *ResizeDrag) Column() Column {
	return d.column
}

// Move resizes the column to max(min, pointerX - origin - offset).
// Ignored after End.
func (d *ResizeDrag) Move(pointerX int) {
	if d.ended {
		return
	}
	d.g.ResizeColumn(d.column, pointerX-d.origin)
}

// End releases the drag. Safe to call more than once.
func (d *ResizeDrag) End() {
	if d.ended {
		return
	}
	d.ended = true
	if d.g.drag == d {
		d.g.drag = nil
	}
}
