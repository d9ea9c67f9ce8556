package ast

// Table is a structured table: caption, column specifications, a head,
// any number of bodies and a foot.
type Table struct {
	Attr     Attr
	Caption  Caption
	ColSpecs []ColSpec
	Head     TableHead
	Bodies   []TableBody
	Foot     TableFoot
}

// Caption has an optional short form and a long form. A nil Short means
// there is no short caption; a non-nil empty Short is an empty one.
type Caption struct {
	Short []Inline
	Long  []Block
}

// HasShort reports whether c carries a short caption.
func (c Caption) HasShort() bool { return c.Short != nil }

// ColSpec is the alignment and width of one column.
type ColSpec struct {
	Align Alignment
	Width ColWidth
}

// DefaultColSpec returns the default alignment and width.
func DefaultColSpec() ColSpec { return ColSpec{} }

// ColWidth is a column width as a fraction of the text width. The zero
// value is the unspecified default width; Fraction is meaningful only
// when Specified.
type ColWidth struct {
	Fraction  float64
	Specified bool
}

// Width returns a specified column width.
func Width(fraction float64) ColWidth {
	return ColWidth{Fraction: fraction, Specified: true}
}

func (w ColWidth) IsDefault() bool { return !w.Specified }

type TableHead struct {
	Attr Attr
	Rows []Row
}

// TableBody has RowHeadColumns leading columns of row headers, an
// intermediate head and the body rows.
type TableBody struct {
	Attr           Attr
	RowHeadColumns int
	Head           []Row
	Body           []Row
}

type TableFoot struct {
	Attr Attr
	Rows []Row
}

type Row struct {
	Attr  Attr
	Cells []Cell
}

// Cell spans RowSpan rows and ColSpan columns. Spans are not validated.
type Cell struct {
	Attr    Attr
	Align   Alignment
	RowSpan int
	ColSpan int
	Content []Block
}

// NewCell returns a default aligned cell spanning one row and one column.
func NewCell(content ...Block) Cell {
	return Cell{RowSpan: 1, ColSpan: 1, Content: content}
}

// NewRow returns a row with empty attributes holding cells.
func NewRow(cells ...Cell) Row {
	return Row{Cells: cells}
}

// Rows returns every row of t in document order: head rows, then each
// body's head and body rows, then foot rows.
func (t *Table) Rows() []*Row {
	var res []*Row
	add := func(rs []Row) {
		for i := range rs {
			res = append(res, &rs[i])
		}
	}
	add(t.Head.Rows)
	for i := range t.Bodies {
		add(t.Bodies[i].Head)
		add(t.Bodies[i].Body)
	}
	add(t.Foot.Rows)
	return res
}
