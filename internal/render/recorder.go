package render

import "sync"

const (
	OpRect   = "rect"
	OpLine   = "line"
	OpCircle = "circle"
	OpText   = "text"
)

// Command is one recorded draw call.
type Command struct {
	Op     string `json:"op"`
	Rect   *Rect  `json:"rect,omitempty"`
	From   *Point `json:"from,omitempty"`
	To     *Point `json:"to,omitempty"`
	Center *Point `json:"center,omitempty"`
	Radius int    `json:"radius,omitempty"`
	Width  int    `json:"width,omitempty"`
	Text   string `json:"text,omitempty"`
	Color  Color  `json:"color"`
	Bg     *Color `json:"bg,omitempty"`
}

// Recorder is a Canvas that keeps draw calls until they are flushed.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (that *Recorder) FillRect(rect Rect, color Color) {
	that.append(Command{Op: OpRect, Rect: &rect, Color: color})
}

func (that *Recorder) DrawLine(from, to Point, color Color, width int) {
	that.append(Command{Op: OpLine, From: &from, To: &to, Color: color, Width: width})
}

func (that *Recorder) FillCircle(center Point, radius int, color Color) {
	that.append(Command{Op: OpCircle, Center: &center, Radius: radius, Color: color})
}

func (that *Recorder) DrawText(pos Point, text string, fg, bg Color) {
	that.append(Command{Op: OpText, From: &pos, Text: text, Color: fg, Bg: &bg})
}

// Flush returns the recorded commands and starts a new frame.
func (that *Recorder) Flush() []Command {
	that.mu.Lock()
	defer that.mu.Unlock()

	commands := that.commands
	that.commands = nil

	return commands
}

func (that *Recorder) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.commands)
}

func (that *Recorder) append(command Command) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.commands = append(that.commands, command)
}
