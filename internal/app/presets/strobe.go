package presets

import (
	"github.com/tobywaite/firemix/internal/domain/preset"
)

// StrobeType is the registry type name of Strobe.
const StrobeType = "Strobe"

// StrobeSettings holds the Strobe parameter defaults.
type StrobeSettings struct {
	Rate float64 `default:"8"`
	Hue  float64 `default:"0"`
	Mode string  `default:"mono"`
}

// Strobe flashes all pixels on and off. Reset starts on a lit frame.
type Strobe struct {
	preset.Base
	rate  *preset.Param[float64]
	hue   *preset.Param[float64]
	mode  *preset.Param[string]
	lit   bool
	frame []RGB
}

// NewStrobe creates a Strobe preset.
func NewStrobe(m preset.Mixer, name string) preset.Preset {
	var s StrobeSettings
	defaultSettings(&s)

	p := &Strobe{
		rate: preset.NewParam("rate", s.Rate, "gt=0,lte=60"),
		hue:  preset.NewParam("hue", s.Hue, "gte=0,lte=1"),
		mode: preset.NewParam("mode", s.Mode, "oneof=mono color"),
	}
	p.Base = preset.NewBase(StrobeType, m, name, p.rate, p.hue, p.mode)
	p.OnReset(p.reset)
	return p
}

// Lit reports whether the current frame is lit.
func (p *Strobe) Lit() bool {
	return p.lit
}

// Frame returns the current pixels.
func (p *Strobe) Frame() []RGB {
	return p.frame
}

func (p *Strobe) reset() {
	c := RGB{R: 255, G: 255, B: 255}
	if p.mode.Value() == "color" {
		c = hsv(p.hue.Value(), 1, 1)
	}
	p.lit = true
	p.frame = make([]RGB, pixelCount(p.Mixer()))
	for i := range p.frame {
		p.frame[i] = c
	}
}
