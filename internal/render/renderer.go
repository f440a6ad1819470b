package render

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const lineWidth = 2

// Palette holds the colors used to draw a board.
type Palette struct {
	Background Color
	Grid       Color
	Black      Color
	White      Color
	Highlight  Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: ColorBrown,
		Grid:       ColorBlack,
		Black:      ColorBlack,
		White:      ColorWhite,
		Highlight:  Color{220, 20, 60},
	}
}

// Cells is read access to the board being drawn.
type Cells interface {
	Rows() int
	Cols() int
	Cell(row, col int) entity.Cell
}

type Renderer struct {
	layout  Layout
	palette Palette
	banner  Point
}

func NewRenderer(layout Layout, palette Palette) *Renderer {
	return &Renderer{
		layout:  layout,
		palette: palette,
		banner:  Point{X: layout.Width() * 28 / 75, Y: layout.BlockSize},
	}
}

func (that *Renderer) Layout() Layout {
	return that.layout
}

// DrawBoard paints the cell backgrounds and the grid lines.
func (that *Renderer) DrawBoard(canvas Canvas) {
	size := that.layout.BlockSize
	half := size / 2
	width, height := that.layout.Width(), that.layout.Height()

	for x := 0; x < width; x += size {
		for y := 0; y < height; y += size {
			canvas.FillRect(Rect{X: x, Y: y, Width: size, Height: size}, that.palette.Background)
		}
	}

	for x := half; x <= width-half; x += size {
		canvas.DrawLine(Point{X: x, Y: half}, Point{X: x, Y: height - half}, that.palette.Grid, lineWidth)
	}

	for y := half; y <= height-half; y += size {
		canvas.DrawLine(Point{X: half, Y: y}, Point{X: width - half, Y: y}, that.palette.Grid, lineWidth)
	}
}

// DrawPieces paints every placed piece; empty and blocked cells are skipped.
func (that *Renderer) DrawPieces(canvas Canvas, cells Cells) {
	for row := 0; row < cells.Rows(); row++ {
		for col := 0; col < cells.Cols(); col++ {
			switch cells.Cell(row, col) {
			case entity.Black:
				canvas.FillCircle(that.layout.CellCenter(row, col), that.layout.Radius, that.palette.Black)
			case entity.White:
				canvas.FillCircle(that.layout.CellCenter(row, col), that.layout.Radius, that.palette.White)
			}
		}
	}
}

// DrawHighlight marks a winning run with a line through its cell centres.
func (that *Renderer) DrawHighlight(canvas Canvas, from, to Point) {
	canvas.DrawLine(from, to, that.palette.Highlight, lineWidth*2)
}

func (that *Renderer) DrawBanner(canvas Canvas, player string) {
	canvas.DrawText(that.banner, fmt.Sprintf("%s wins!", player), ColorWhite, ColorBlack)
}

func (that *Renderer) DrawDrawBanner(canvas Canvas) {
	canvas.DrawText(that.banner, "Draw!", ColorWhite, ColorBlack)
}
