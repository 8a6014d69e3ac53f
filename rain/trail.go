package rain

import (
	"github.com/lixenwraith/digital-rain/constants"
)

// Cell is one drawable character cell produced for the current frame.
type Cell struct {
	Row        int
	Column     int
	Rune       rune
	Brightness float64 // 1.0 at the head, fading toward the tail
}

// Trail is a single falling column of characters. Glyphs are anchored to
// screen rows: as the head advances, the body keeps its rows and a fresh
// glyph is sampled for each newly entered cell.
type Trail struct {
	Column  int // fixed for the trail's lifetime
	HeadRow int // may be negative before the head enters the screen
	Length  int
	Speed   int // rows per frame

	runes []rune // runes[i] sits at row HeadRow-i
}

// NewTrail creates a trail at the given column with sampled length and
// speed. The head enters the top row on the first advance.
func NewTrail(s *Sampler, column, height int) *Trail {
	length, speed := s.TrailParams(height)
	t := &Trail{
		Column:  column,
		HeadRow: -1,
		Length:  length,
		Speed:   speed,
		runes:   make([]rune, length),
	}
	for i := range t.runes {
		t.runes[i] = s.Rune()
	}
	return t
}

// Advance moves the head down by the trail's speed, sampling a fresh
// glyph for each newly entered cell and shimmering the body. It reports
// whether the trail is still visible; false means the tail has left the
// screen and the caller must drop the trail.
func (t *Trail) Advance(s *Sampler, height int) bool {
	for step := 0; step < t.Speed; step++ {
		copy(t.runes[1:], t.runes[:len(t.runes)-1])
		t.runes[0] = s.Rune()
		t.HeadRow++
	}

	for i := 1; i < len(t.runes); i++ {
		if s.Roll(constants.ShimmerChance) {
			t.runes[i] = s.Rune()
		}
	}

	return t.HeadRow-t.Length < height
}

// Cells calls visit for every on-screen cell of the trail, head first.
// It does not mutate the trail and may be called any number of times
// per frame.
func (t *Trail) Cells(height int, visit func(Cell)) {
	for i := 0; i < t.Length; i++ {
		row := t.HeadRow - i
		if row >= height {
			continue
		}
		if row < 0 {
			break
		}
		visit(Cell{
			Row:        row,
			Column:     t.Column,
			Rune:       t.runes[i],
			Brightness: brightness(i, t.Length),
		})
	}
}

// brightness maps a cell's distance behind the head to its display
// intensity: 1.0 at the head, TailBrightness at the last cell.
func brightness(i, length int) float64 {
	if i == 0 || length == 1 {
		return 1.0
	}
	fade := 1.0 - float64(i)/float64(length-1)
	return constants.TailBrightness + (1.0-constants.TailBrightness)*fade
}
