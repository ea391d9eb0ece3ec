package model

import (
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	screenLiveRune = '▩'

	ansiClear = "\033[H\033[2J"
)

// Renderer draws one generation together with a status text
type Renderer interface {
	Display(g *Grid, status string) error
}

// ScreenRenderer draws the grid on a full-screen tcell terminal.
// Status lines occupy the top rows; the grid is drawn below them.
type ScreenRenderer struct {
	screen    tcell.Screen
	liveStyle tcell.Style
	textStyle tcell.Style
}

// NewScreenRenderer renders onto an already initialized screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen:    screen,
		liveStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		textStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// Display renders the grid to the screen
func (r *ScreenRenderer) Display(g *Grid, status string) error {
	r.screen.Clear()

	lines := splitStatus(status)
	for row, line := range lines {
		col := 0
		for _, ch := range line {
			r.screen.SetContent(col, row, ch, nil, r.textStyle)
			col++
		}
	}

	top := len(lines)
	for y := range g.Size() {
		for x := range g.Size() {
			if g.Get(Position{X: x, Y: y}).IsLive() {
				r.screen.SetContent(x, top+y, screenLiveRune, nil, r.liveStyle)
			}
		}
	}

	r.screen.Show()
	return nil
}

// TextRenderer implements basic terminal rendering on a plain writer
type TextRenderer struct {
	Out io.Writer
	// ClearScreen prefixes every frame with an ANSI clear sequence
	ClearScreen bool
}

// Display writes the status followed by one line per grid row
func (r *TextRenderer) Display(g *Grid, status string) error {
	var b strings.Builder
	if r.ClearScreen {
		b.WriteString(ansiClear)
	}
	for _, line := range splitStatus(status) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for y := range g.Size() {
		for x := range g.Size() {
			if g.Get(Position{X: x, Y: y}).IsLive() {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(r.Out, b.String()); err != nil {
		return errors.Wrap(err, "[TextRenderer.Display] failed to write frame")
	}
	return nil
}

func splitStatus(status string) []string {
	status = strings.TrimRight(status, "\n")
	if status == "" {
		return nil
	}
	return strings.Split(status, "\n")
}
