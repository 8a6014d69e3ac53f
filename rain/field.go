package rain

import (
	"fmt"

	"github.com/lixenwraith/digital-rain/constants"
)

// Field owns every live trail on the grid and the spawn policy that
// keeps the live count tracking the density-derived cap. All mutation
// happens inside AdvanceFrame on the caller's goroutine.
type Field struct {
	width   int
	height  int
	cap     int
	sampler *Sampler

	trails   []*Trail
	occupied []bool // one flag per column, at most one trail each

	// expected spawns per frame at steady state, spread across free columns
	spawnPerFrame float64
}

// NewField creates a field for a width x height grid. Density is the
// number of cells per expected concurrent trail; the cap works out to
// ceil(width*height/density). Non-positive dimensions or density are
// configuration errors.
func NewField(width, height, density int, sampler *Sampler) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terminal size %dx%d is not drawable", width, height)
	}
	if density <= 0 {
		return nil, fmt.Errorf("trail density must be positive, got %d", density)
	}

	f := &Field{
		width:    width,
		height:   height,
		cap:      (width*height + density - 1) / density,
		sampler:  sampler,
		occupied: make([]bool, width),
	}

	// A trail lives roughly (height+avgLength)/avgSpeed frames, so
	// holding the live count at the cap needs cap/lifetime spawns per
	// frame on average.
	avgLength := float64(constants.MinTrailLength+height) / 2
	avgSpeed := float64(constants.BaseSpeed) +
		float64(constants.FastSpeed-constants.BaseSpeed)*float64(constants.FastSpeedPercent)/100
	lifetime := (float64(height) + avgLength) / avgSpeed
	f.spawnPerFrame = float64(f.cap) / lifetime

	return f, nil
}

// AdvanceFrame advances every live trail one frame, drops expired ones
// and spawns replacements on free columns. Trails advance in spawn
// order, so a seeded Source makes the whole frame deterministic.
func (f *Field) AdvanceFrame() {
	for i := range f.occupied {
		f.occupied[i] = false
	}

	live := f.trails[:0]
	for _, t := range f.trails {
		if t.Advance(f.sampler, f.height) {
			live = append(live, t)
			f.occupied[t.Column] = true
		}
	}
	f.trails = live

	f.spawn()
}

// spawn rolls each unoccupied column while the live count sits below the
// cap. The per-column probability is tuned so the expected spawn rate
// balances the expected expiry rate at the cap (soft cap).
func (f *Field) spawn() {
	free := 0
	for _, taken := range f.occupied {
		if !taken {
			free++
		}
	}
	if free == 0 || len(f.trails) >= f.cap {
		return
	}

	p := f.spawnPerFrame / float64(free)
	for col := 0; col < f.width && len(f.trails) < f.cap; col++ {
		if f.occupied[col] {
			continue
		}
		if f.sampler.Roll(p) {
			f.trails = append(f.trails, NewTrail(f.sampler, col, f.height))
			f.occupied[col] = true
		}
	}
}

// LiveCells appends every visible cell of every live trail to buf and
// returns it. The result is valid for the current frame only; callers
// reuse the buffer across frames.
func (f *Field) LiveCells(buf []Cell) []Cell {
	cells := buf[:0]
	for _, t := range f.trails {
		t.Cells(f.height, func(c Cell) {
			cells = append(cells, c)
		})
	}
	return cells
}

// Live returns the number of live trails.
func (f *Field) Live() int { return len(f.trails) }

// Cap returns the density-derived trail cap.
func (f *Field) Cap() int { return f.cap }

// Width returns the grid width in cells.
func (f *Field) Width() int { return f.width }

// Height returns the grid height in cells.
func (f *Field) Height() int { return f.height }
