package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/digital-rain/rain"
)

// Renderer owns the terminal handle for drawing. Each frame is rebuilt
// from the field snapshot; tcell diffs cells internally so only changed
// cells reach the terminal.
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer over an initialized screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame from the given cells.
func (r *Renderer) Draw(cells []rain.Cell) {
	r.screen.Clear()
	for _, c := range cells {
		r.screen.SetContent(c.Column, c.Row, c.Rune, nil, StyleForBrightness(c.Brightness))
	}
	r.screen.Show()
}
