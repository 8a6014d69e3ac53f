package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the rain gradient
var (
	RgbRainHead   = tcell.NewRGBColor(200, 255, 200) // near-white head
	RgbRainBright = tcell.NewRGBColor(0, 255, 70)    // full-intensity body green
	RgbRainDim    = tcell.NewRGBColor(0, 80, 0)      // darkest tail green
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
)

// StyleForBrightness maps a cell brightness in (0, 1] to a trail style.
// The head (brightness 1.0) renders near-white and bold; everything
// behind it interpolates linearly between the dim and bright greens.
func StyleForBrightness(b float64) tcell.Style {
	if b >= 1.0 {
		return tcell.StyleDefault.Foreground(RgbRainHead).Background(RgbBackground).Bold(true)
	}
	if b < 0 {
		b = 0
	}
	return tcell.StyleDefault.Foreground(lerpColor(RgbRainDim, RgbRainBright, b)).Background(RgbBackground)
}

// lerpColor interpolates each RGB channel from one color to the other,
// t=0 giving the first and t=1 the second.
func lerpColor(from, to tcell.Color, t float64) tcell.Color {
	fr, fg, fb := from.RGB()
	tr, tg, tb := to.RGB()
	r := int32(float64(fr) + (float64(tr)-float64(fr))*t)
	g := int32(float64(fg) + (float64(tg)-float64(fg))*t)
	b := int32(float64(fb) + (float64(tb)-float64(fb))*t)
	return tcell.NewRGBColor(r, g, b)
}
