package rain

import (
	"math/rand"
	"testing"
)

func newTestField(t *testing.T, width, height, density int, seed int64) *Field {
	t.Helper()
	s := NewSampler(rand.New(rand.NewSource(seed)), []rune("ｱｲｳｴｵ01"))
	f, err := NewField(width, height, density, s)
	if err != nil {
		t.Fatalf("NewField(%d, %d, %d): %v", width, height, density, err)
	}
	return f
}

func TestNewFieldValidation(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)), []rune("x"))

	tests := []struct {
		name                   string
		width, height, density int
		wantErr                bool
		wantCap                int
	}{
		{"Valid", 80, 24, 30, false, 64},
		{"Cap rounds up", 10, 5, 50, false, 1},
		{"Dense", 10, 10, 1, false, 100},
		{"Zero width", 0, 24, 30, true, 0},
		{"Zero height", 80, 0, 30, true, 0},
		{"Negative width", -1, 24, 30, true, 0},
		{"Zero density", 80, 24, 0, true, 0},
		{"Negative density", 80, 24, -5, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewField(tt.width, tt.height, tt.density, s)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Cap() != tt.wantCap {
				t.Errorf("cap = %d, want %d", f.Cap(), tt.wantCap)
			}
		})
	}
}

func TestFieldCellBounds(t *testing.T) {
	charset := []rune("ｱｲｳｴｵ01")
	inSet := make(map[rune]bool, len(charset))
	for _, r := range charset {
		inSet[r] = true
	}

	s := NewSampler(rand.New(rand.NewSource(9)), charset)
	f, err := NewField(80, 24, 30, s)
	if err != nil {
		t.Fatal(err)
	}

	var buf []Cell
	for frame := 0; frame < 500; frame++ {
		f.AdvanceFrame()
		buf = f.LiveCells(buf)
		for _, c := range buf {
			if c.Column < 0 || c.Column >= f.Width() {
				t.Fatalf("frame %d: column %d out of [0, %d)", frame, c.Column, f.Width())
			}
			if c.Row < 0 || c.Row >= f.Height() {
				t.Fatalf("frame %d: row %d out of [0, %d)", frame, c.Row, f.Height())
			}
			if !inSet[c.Rune] {
				t.Fatalf("frame %d: rune %q not from charset", frame, c.Rune)
			}
		}
	}
}

func TestFieldDeterminism(t *testing.T) {
	a := newTestField(t, 40, 12, 20, 11)
	b := newTestField(t, 40, 12, 20, 11)

	var bufA, bufB []Cell
	for frame := 0; frame < 200; frame++ {
		a.AdvanceFrame()
		b.AdvanceFrame()
		bufA = a.LiveCells(bufA)
		bufB = b.LiveCells(bufB)

		if len(bufA) != len(bufB) {
			t.Fatalf("frame %d: cell counts diverged: %d vs %d", frame, len(bufA), len(bufB))
		}
		for i := range bufA {
			if bufA[i] != bufB[i] {
				t.Fatalf("frame %d: cell %d diverged: %+v vs %+v", frame, i, bufA[i], bufB[i])
			}
		}
	}
}

func TestFieldSoftCap(t *testing.T) {
	f := newTestField(t, 10, 5, 50, 13)
	if f.Cap() != 1 {
		t.Fatalf("cap = %d, want 1", f.Cap())
	}

	sawTrail := false
	for frame := 0; frame < 500; frame++ {
		f.AdvanceFrame()
		if f.Live() > f.Cap() {
			t.Fatalf("frame %d: %d live trails above cap %d", frame, f.Live(), f.Cap())
		}
		if f.Live() > 0 {
			sawTrail = true
		}
	}
	if !sawTrail {
		t.Fatal("no trail ever spawned")
	}
}

func TestFieldDensityConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("long-run statistical test")
	}

	f := newTestField(t, 80, 24, 30, 17)

	// Warm up past the initial fill, then time-average the live count.
	for frame := 0; frame < 500; frame++ {
		f.AdvanceFrame()
	}
	total := 0
	const frames = 10000
	for frame := 0; frame < frames; frame++ {
		f.AdvanceFrame()
		total += f.Live()
	}

	avg := float64(total) / frames
	target := float64(f.Cap())
	if avg < 0.5*target || avg > target {
		t.Errorf("average live count %.1f outside tolerance band [%.1f, %.1f]", avg, 0.5*target, target)
	}
}
