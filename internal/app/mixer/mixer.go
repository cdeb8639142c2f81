// Package mixer provides the mixer handle presets are built against.
package mixer

// Config holds mixer configuration.
type Config struct {
	Name       string
	PixelCount int
}

// Mixer is a fixed-size pixel mixer.
type Mixer struct {
	name       string
	pixelCount int
}

// New creates a new mixer.
func New(cfg Config) *Mixer {
	return &Mixer{
		name:       cfg.Name,
		pixelCount: cfg.PixelCount,
	}
}

// Name returns the mixer name.
func (m *Mixer) Name() string {
	return m.name
}

// PixelCount returns the number of addressable pixels.
func (m *Mixer) PixelCount() int {
	return m.pixelCount
}
