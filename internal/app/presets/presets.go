// Package presets provides the built-in preset types.
package presets

import (
	"math"

	"github.com/creasty/defaults"

	"github.com/tobywaite/firemix/internal/app/registry"
	"github.com/tobywaite/firemix/internal/domain/preset"
)

// RGB is a single pixel color.
type RGB struct {
	R, G, B uint8
}

// RegisterBuiltins registers every built-in preset type.
func RegisterBuiltins(r *registry.Registry) {
	r.Register(SolidColorType, NewSolidColor)
	r.Register(RainbowType, NewRainbow)
	r.Register(StrobeType, NewStrobe)
}

// defaultSettings fills a settings struct from its default tags.
// The tags are static, so a failure is a programming error.
func defaultSettings(settings any) {
	if err := defaults.Set(settings); err != nil {
		panic(err)
	}
}

// pixelCount returns the pixel count of m, or 0 for a nil mixer.
func pixelCount(m preset.Mixer) int {
	if m == nil {
		return 0
	}
	return m.PixelCount()
}

// hsv converts hue, saturation and value in [0,1] to RGB.
func hsv(h, s, v float64) RGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{R: to8(r), G: to8(g), B: to8(b)}
}

func to8(c float64) uint8 {
	return uint8(math.Round(c * 255))
}
