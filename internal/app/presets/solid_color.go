package presets

import (
	"github.com/tobywaite/firemix/internal/domain/preset"
)

// SolidColorType is the registry type name of SolidColor.
const SolidColorType = "SolidColor"

// SolidColorSettings holds the SolidColor parameter defaults.
type SolidColorSettings struct {
	Hue        float64 `default:"0"`
	Saturation float64 `default:"1"`
	Brightness float64 `default:"1"`
}

// SolidColor fills every pixel with one color.
type SolidColor struct {
	preset.Base
	hue        *preset.Param[float64]
	saturation *preset.Param[float64]
	brightness *preset.Param[float64]
	frame      []RGB
}

// NewSolidColor creates a SolidColor preset.
func NewSolidColor(m preset.Mixer, name string) preset.Preset {
	var s SolidColorSettings
	defaultSettings(&s)

	p := &SolidColor{
		hue:        preset.NewParam("hue", s.Hue, "gte=0,lte=1"),
		saturation: preset.NewParam("saturation", s.Saturation, "gte=0,lte=1"),
		brightness: preset.NewParam("brightness", s.Brightness, "gte=0,lte=1"),
	}
	p.Base = preset.NewBase(SolidColorType, m, name, p.hue, p.saturation, p.brightness)
	p.OnReset(p.reset)
	return p
}

// Frame returns the pixels computed on the last reset.
func (p *SolidColor) Frame() []RGB {
	return p.frame
}

func (p *SolidColor) reset() {
	c := hsv(p.hue.Value(), p.saturation.Value(), p.brightness.Value())
	p.frame = make([]RGB, pixelCount(p.Mixer()))
	for i := range p.frame {
		p.frame[i] = c
	}
}
