package sequence

import "errors"

// ErrZeroColor is returned when all three RGB channels are zero; the muting
// transform would otherwise divide by zero and propagate NaN into the
// renderer.
var ErrZeroColor = errors.New("cannot adjust color with all-zero RGB channels")

// Color is an RGBA color with float channels in [0, 1]. RGB may exceed 1
// before adjustment; alpha doubles as opacity.
type Color struct {
	R, G, B, A float64
}

// AdjustColor mutes a color for display: RGB is normalized by its own peak
// channel, compressed by 0.3 and raised by 0.3, leaving every channel in
// [0.3, 0.6]. Alpha passes through unchanged.
//
// The transform is not idempotent: adjusting an already-adjusted color
// normalizes by the new peak (0.6) and lands on different values.
func AdjustColor(c Color) (Color, error) {
	peak := max(c.R, c.G, c.B)
	if peak == 0 {
		return Color{}, ErrZeroColor
	}
	return Color{
		R: c.R/peak*0.3 + 0.3,
		G: c.G/peak*0.3 + 0.3,
		B: c.B/peak*0.3 + 0.3,
		A: c.A,
	}, nil
}
