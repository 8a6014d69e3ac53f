package constants

import "time"

// Animation Loop Timing
const (
	// FrameUpdateInterval is the animation frame interval (~20 FPS)
	FrameUpdateInterval = 50 * time.Millisecond
)

// Trail Geometry & Motion
const (
	// MinTrailLength is the shortest visible trail, in cells
	MinTrailLength = 4

	// BaseSpeed is the normal fall rate in rows per frame
	BaseSpeed = 1

	// FastSpeed is the fall rate of occasional fast trails
	FastSpeed = 2

	// FastSpeedPercent is the share of trails spawned at FastSpeed
	FastSpeedPercent = 20
)

// Visual Tuning
const (
	// ShimmerChance is the per-cell probability of re-sampling a body
	// glyph each frame
	ShimmerChance = 0.12

	// TailBrightness is the display intensity at the last trail cell;
	// the head is 1.0 and the body fades linearly between the two
	TailBrightness = 0.15
)

// Configuration Defaults
const (
	// DefaultDensity is the fallback TRAIL_DENSITY: terminal cells per
	// expected concurrent trail
	DefaultDensity = 30

	// DefaultCharset is the fallback RAIN_CHARSET, a mix of halfwidth
	// katakana, digits and Latin glyphs; every rune is one cell wide
	DefaultCharset = "ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ*+-<>¦"
)
