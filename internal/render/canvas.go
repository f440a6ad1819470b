package render

// Color is an RGB triple.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorBrown = Color{205, 128, 0}
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

func (that Rect) Contains(p Point) bool {
	return p.X >= that.X && p.X < that.X+that.Width && p.Y >= that.Y && p.Y < that.Y+that.Height
}

// Canvas is the drawing capability a backend has to provide.
type Canvas interface {
	FillRect(rect Rect, color Color)
	DrawLine(from, to Point, color Color, width int)
	FillCircle(center Point, radius int, color Color)
	DrawText(pos Point, text string, fg, bg Color)
}
