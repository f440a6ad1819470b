package render

const (
	charWidth  = 18
	lineHeight = 32
)

// Button is a text label that can be clicked.
type Button struct {
	Pos   Point
	Label string
}

func NewButton(x, y int, label string) *Button {
	return &Button{Pos: Point{X: x, Y: y}, Label: label}
}

func (that *Button) Bounds() Rect {
	return Rect{
		X:      that.Pos.X,
		Y:      that.Pos.Y,
		Width:  TextWidth(that.Label),
		Height: lineHeight,
	}
}

func (that *Button) Draw(canvas Canvas) {
	canvas.DrawText(that.Pos, that.Label, ColorWhite, ColorBlack)
}

func (that *Button) IsClicked(p Point) bool {
	return that.Bounds().Contains(p)
}

// TextWidth estimates the rendered width of a label.
func TextWidth(text string) int {
	return len([]rune(text)) * charWidth
}
