package game

// DefaultBoardSize matches the classic 4x4 duel grid.
const DefaultBoardSize = 4

// Cell is one grid position. Controller may change on capture; the card
// itself never does.
type Cell struct {
	Card       Card   `json:"card"`
	Controller string `json:"controller"`
	Occupied   bool   `json:"occupied"`
}

// Board is a square grid of cells, indexed Cells[y][x].
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

func NewBoard(size int) Board {
	if size <= 0 {
		size = DefaultBoardSize
	}
	c := make([][]Cell, size)
	for i := range c {
		c[i] = make([]Cell, size)
	}
	return Board{Size: size, Cells: c}
}

// Clone deep-copies the grid. Snapshots hand cells to callers that outlive
// the per-game lock, so they must not share backing arrays with the live
// board.
func (b *Board) Clone() Board {
	cells := make([][]Cell, len(b.Cells))
	for i, row := range b.Cells {
		cells[i] = append([]Cell(nil), row...)
	}
	return Board{Size: b.Size, Cells: cells}
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Size && y >= 0 && y < b.Size
}

// CellAt is a read-only lookup.
func (b *Board) CellAt(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Cell{}, ErrOutOfBounds
	}
	return b.Cells[y][x], nil
}

// Place occupies an empty cell. No other cell is touched.
func (b *Board) Place(x, y int, card Card, controller string) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.Cells[y][x].Occupied {
		return ErrCellOccupied
	}
	b.Cells[y][x] = Cell{Card: card, Controller: controller, Occupied: true}
	return nil
}

// SetController flips an occupied cell to a new controller. Only the capture
// step calls this; hitting an empty cell means the caller computed captures
// against a stale board.
func (b *Board) SetController(x, y int, controller string) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if !b.Cells[y][x].Occupied {
		return ErrCellEmpty
	}
	b.Cells[y][x].Controller = controller
	return nil
}

// Neighbor is an in-bounds orthogonally adjacent coordinate together with
// the two facing sides: Toward on the placed card, Facing on the neighbor.
type Neighbor struct {
	X, Y   int
	Toward Side
	Facing Side
}

// neighborDirs: placed side, neighbor side, dx, dy. Top of a card faces the
// row above (y-1).
var neighborDirs = [4]struct {
	toward, facing Side
	dx, dy         int
}{
	{Top, Bottom, 0, -1},
	{Right, Left, 1, 0},
	{Bottom, Top, 0, 1},
	{Left, Right, -1, 0},
}

// Neighbors returns the up-to-4 adjacent in-bounds coordinates. Corners get
// 2, edges 3, interior cells 4; missing neighbors are simply absent rather
// than substituted with defaults.
func (b *Board) Neighbors(x, y int) []Neighbor {
	out := make([]Neighbor, 0, 4)
	for _, d := range neighborDirs {
		nx, ny := x+d.dx, y+d.dy
		if b.InBounds(nx, ny) {
			out = append(out, Neighbor{X: nx, Y: ny, Toward: d.toward, Facing: d.facing})
		}
	}
	return out
}

func (b *Board) OccupiedCount() int {
	n := 0
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			if b.Cells[y][x].Occupied {
				n++
			}
		}
	}
	return n
}

func (b *Board) Full() bool {
	return b.OccupiedCount() == b.Size*b.Size
}

// ControlledBy counts the cells a player currently controls.
func (b *Board) ControlledBy(player string) int {
	n := 0
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			if b.Cells[y][x].Occupied && b.Cells[y][x].Controller == player {
				n++
			}
		}
	}
	return n
}
