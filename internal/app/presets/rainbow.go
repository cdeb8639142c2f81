package presets

import (
	"github.com/tobywaite/firemix/internal/domain/preset"
)

// RainbowType is the registry type name of Rainbow.
const RainbowType = "Rainbow"

// RainbowSettings holds the Rainbow parameter defaults.
type RainbowSettings struct {
	Speed      float64 `default:"0.2"`
	Width      int     `default:"32"`
	Brightness float64 `default:"1"`
}

// Rainbow spreads the hue wheel across width pixels.
type Rainbow struct {
	preset.Base
	speed      *preset.Param[float64]
	width      *preset.Param[int]
	brightness *preset.Param[float64]
	frame      []RGB
}

// NewRainbow creates a Rainbow preset.
func NewRainbow(m preset.Mixer, name string) preset.Preset {
	var s RainbowSettings
	defaultSettings(&s)

	p := &Rainbow{
		speed:      preset.NewParam("speed", s.Speed, "gte=0"),
		width:      preset.NewParam("width", s.Width, "gte=1"),
		brightness: preset.NewParam("brightness", s.Brightness, "gte=0,lte=1"),
	}
	p.Base = preset.NewBase(RainbowType, m, name, p.speed, p.width, p.brightness)
	p.OnReset(p.reset)
	return p
}

// Frame returns the pixels computed on the last reset.
func (p *Rainbow) Frame() []RGB {
	return p.frame
}

func (p *Rainbow) reset() {
	width := p.width.Value()
	p.frame = make([]RGB, pixelCount(p.Mixer()))
	for i := range p.frame {
		p.frame[i] = hsv(float64(i%width)/float64(width), 1, p.brightness.Value())
	}
}
