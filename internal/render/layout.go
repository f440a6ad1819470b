package render

const (
	DefaultBlockSize = 50
	DefaultRadius    = 20
)

// Layout maps board cells to canvas pixels.
type Layout struct {
	Rows      int
	Cols      int
	BlockSize int
	Radius    int
}

func NewLayout(rows, cols, blockSize, radius int) Layout {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	if radius <= 0 {
		radius = DefaultRadius
	}

	return Layout{
		Rows:      rows,
		Cols:      cols,
		BlockSize: blockSize,
		Radius:    radius,
	}
}

func (that Layout) Width() int {
	return that.Cols * that.BlockSize
}

func (that Layout) Height() int {
	return that.Rows * that.BlockSize
}

// CellAt converts a pointer position into a board cell.
// Points outside the canvas are rejected.
func (that Layout) CellAt(p Point) (int, int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= that.Width() || p.Y >= that.Height() {
		return 0, 0, false
	}

	return p.Y / that.BlockSize, p.X / that.BlockSize, true
}

func (that Layout) CellCenter(row, col int) Point {
	half := that.BlockSize / 2

	return Point{
		X: col*that.BlockSize + half,
		Y: row*that.BlockSize + half,
	}
}
