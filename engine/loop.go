package engine

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/rain"
	"github.com/lixenwraith/digital-rain/render"
)

// State is the loop's lifecycle state.
type State int32

const (
	StateRunning State = iota
	StateStopped
)

// Loop drives the animation: one frame per tick, input polled between
// ticks, update then draw strictly sequentially on a single goroutine.
type Loop struct {
	screen   tcell.Screen
	field    *rain.Field
	renderer *render.Renderer
	state    atomic.Int32 // State; atomic so observers can read mid-run
	interval time.Duration
	cellBuf  []rain.Cell
}

// NewLoop wires the screen, field and renderer into a runnable loop
// starting in StateRunning.
func NewLoop(screen tcell.Screen, field *rain.Field, renderer *render.Renderer) *Loop {
	l := &Loop{
		screen:   screen,
		field:    field,
		renderer: renderer,
		interval: constants.FrameUpdateInterval,
	}
	l.state.Store(int32(StateRunning))
	return l
}

// State returns the loop's current lifecycle state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Run animates frames until a quit key arrives, then returns with the
// loop in StateStopped. The caller restores the terminal; input polling
// stops once the screen is finalized and PollEvent returns nil.
func (l *Loop) Run() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for l.State() == StateRunning {
		select {
		case ev := <-events:
			if quitRequested(ev) {
				l.state.Store(int32(StateStopped))
			}

		case <-ticker.C:
			l.field.AdvanceFrame()
			l.cellBuf = l.field.LiveCells(l.cellBuf)
			l.renderer.Draw(l.cellBuf)
		}
	}
}

// quitRequested reports whether the event is one of the quit keys.
// Resize and mouse events fall through; dimensions are fixed at startup.
func quitRequested(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return true
	}
	return key.Key() == tcell.KeyRune && key.Rune() == 'q'
}
