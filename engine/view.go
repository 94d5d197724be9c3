package engine

// ============================================================================
// TABLE VIEW - Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns caller data. It reads through this interface.
//
// Implementations:
//   SliceView      - wraps columns + [][]CellValue
//   DomainView[T]  - reads typed structs via accessor functions (zero-copy)
//   SubView        - filtered subset (indices into parent, zero-copy)
//   ConcatView     - virtual concatenation of two views sharing a header
// ============================================================================

// TableView provides indexed access to a table.
// Cell must return Null for any out-of-range row or column; the engine
// relies on that to tolerate ragged rows.
type TableView interface {
	Len() int
	Columns() []string
	Cell(row, col int) CellValue
}

// ColumnIndex returns the position of a named column in a view, or -1.
func ColumnIndex(view TableView, name string) int {
	return indexOf(view.Columns(), name)
}

// ============================================================================
// SLICE VIEW - wraps [][]CellValue
// ============================================================================

// SliceView wraps a header and positional rows as a TableView.
type SliceView struct {
	columns []string
	rows    [][]CellValue
}

// NewTableView creates a TableView over caller-owned rows. No copy is made.
func NewTableView(columns []string, rows [][]CellValue) TableView {
	return &SliceView{columns: columns, rows: rows}
}

func (v *SliceView) Len() int          { return len(v.rows) }
func (v *SliceView) Columns() []string { return v.columns }

func (v *SliceView) Cell(row, col int) CellValue {
	if row < 0 || row >= len(v.rows) {
		return Null()
	}
	r := v.rows[row]
	if col < 0 || col >= len(r) {
		return Null()
	}
	return r[col]
}

// ============================================================================
// SUB VIEW - filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent TableView.
// Holds indices into the parent - no data copy.
type SubView struct {
	parent  TableView
	indices []int
}

func newSubView(parent TableView, indices []int) TableView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int          { return len(v.indices) }
func (v *SubView) Columns() []string { return v.parent.Columns() }

func (v *SubView) Cell(row, col int) CellValue {
	if row < 0 || row >= len(v.indices) {
		return Null()
	}
	return v.parent.Cell(v.indices[row], col)
}

// ============================================================================
// CONCAT VIEW - virtual concatenation of two views
// ============================================================================

// ConcatView logically concatenates two TableViews that share a header.
// Hosts that load a large table in chunks can stitch the chunks together
// without copying rows.
type ConcatView struct {
	a, b TableView
}

// NewConcatView appends b's rows after a's. The header is taken from a.
func NewConcatView(a, b TableView) TableView {
	return &ConcatView{a: a, b: b}
}

func (v *ConcatView) Len() int          { return v.a.Len() + v.b.Len() }
func (v *ConcatView) Columns() []string { return v.a.Columns() }

func (v *ConcatView) Cell(row, col int) CellValue {
	if row < v.a.Len() {
		return v.a.Cell(row, col)
	}
	return v.b.Cell(row-v.a.Len(), col)
}

// ============================================================================
// DOMAIN ADAPTER - Zero-copy typed struct access
// ============================================================================
//
// Usage:
//
//	adapter := engine.NewDomainAdapter[Order]().
//	    Column("region", func(o Order) engine.CellValue { return engine.Text(o.Region) }).
//	    Column("sales", func(o Order) engine.CellValue { return engine.Number(o.Sales) })
//
//	view := adapter.Bind(orders)
//	series, err := engine.Execute(spec, view, opts...)
//
// ============================================================================

// DomainAdapter builds a TableView from typed structs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	order []string
	cols  map[string]func(T) CellValue
}

// NewDomainAdapter creates a new adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{cols: make(map[string]func(T) CellValue)}
}

// Column registers a column accessor. Re-registering a name replaces the
// accessor but keeps the original position.
func (a *DomainAdapter[T]) Column(name string, fn func(T) CellValue) *DomainAdapter[T] {
	if _, exists := a.cols[name]; !exists {
		a.order = append(a.order, name)
	}
	a.cols[name] = fn
	return a
}

// Bind creates a TableView from a data slice. Zero-copy - holds reference.
func (a *DomainAdapter[T]) Bind(data []T) TableView {
	fns := make([]func(T) CellValue, len(a.order))
	for i, name := range a.order {
		fns[i] = a.cols[name]
	}
	return &DomainView[T]{data: data, columns: a.order, fns: fns}
}

// DomainView reads typed struct fields via registered accessor functions.
type DomainView[T any] struct {
	data    []T
	columns []string
	fns     []func(T) CellValue
}

func (v *DomainView[T]) Len() int          { return len(v.data) }
func (v *DomainView[T]) Columns() []string { return v.columns }

func (v *DomainView[T]) Cell(row, col int) CellValue {
	if row < 0 || row >= len(v.data) || col < 0 || col >= len(v.fns) {
		return Null()
	}
	return v.fns[col](v.data[row])
}
