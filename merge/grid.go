package merge

// cell is one grid container
type cell struct {
	row, col int
	bounds   Rect
	token    *Token
}

func (c *cell) Occupant() *Token { return c.token }

func (c *cell) Put(tok *Token) {
	c.token = tok
	if tok != nil {
		tok.MoveTo(c.Location())
	}
}

func (c *cell) Bounds() Rect { return c.bounds }

func (c *cell) Location() Location { return GridLocation(c.row, c.col) }

// Grid is the fixed 3x3 board of cells
type Grid struct {
	layout Layout
	cells  [Rows][Cols]*cell
}

// NewGrid creates an empty grid laid out by layout
func NewGrid(layout Layout) *Grid {
	g := &Grid{layout: layout}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			g.cells[r][c] = &cell{row: r, col: c, bounds: layout.CellRect(r, c)}
		}
	}
	return g
}

// Layout returns the grid geometry
func (g *Grid) Layout() Layout {
	return g.layout
}

// Cell returns the container at (row, col), or nil when out of bounds
func (g *Grid) Cell(row, col int) Container {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return nil
	}
	return g.cells[row][col]
}

// At returns the token at (row, col) or nil
func (g *Grid) At(row, col int) *Token {
	c := g.Cell(row, col)
	if c == nil {
		return nil
	}
	return c.Occupant()
}

// FirstEmpty scans row-major for the first empty cell
func (g *Grid) FirstEmpty() (Container, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g.cells[r][c].token == nil {
				return g.cells[r][c], true
			}
		}
	}
	return nil, false
}

// ContainerAt implements Locator
func (g *Grid) ContainerAt(p Point) Container {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g.cells[r][c].bounds.Contains(p) {
				return g.cells[r][c]
			}
		}
	}
	return nil
}

// Tokens returns the placed tokens in row-major order
func (g *Grid) Tokens() []*Token {
	out := make([]*Token, 0, Rows*Cols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if t := g.cells[r][c].token; t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Count returns the number of occupied cells
func (g *Grid) Count() int {
	return len(g.Tokens())
}

// Full reports whether every cell is occupied
func (g *Grid) Full() bool {
	_, ok := g.FirstEmpty()
	return !ok
}
