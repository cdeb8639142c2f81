// Package preset provides the Preset capability interfaces consumed by the sequencer.
package preset

// Mixer is the handle a preset is constructed against.
type Mixer interface {
	// PixelCount returns the number of addressable pixels the mixer renders.
	PixelCount() int
}

// Parameter is a single named value on a preset.
type Parameter interface {
	// Key returns the parameter key used in persisted documents.
	Key() string
	// String returns the key, so a parameter can be used where a string key is expected.
	String() string
	// Get returns the current value.
	Get() any
	// Set replaces the current value, coercing it to the parameter's type.
	Set(value any) error
}

// Preset is a named, parameterized visual effect configuration.
type Preset interface {
	// TypeName returns the registry type name the preset was built from.
	TypeName() string
	// Name returns the display name.
	Name() string
	// Parameter looks up a parameter by key.
	Parameter(key string) (Parameter, bool)
	// Parameters returns all parameters in declaration order.
	Parameters() []Parameter
	// Reset re-initializes internal state for fresh playback.
	Reset()
}

// Factory constructs a preset for the given mixer and display name.
type Factory func(m Mixer, name string) Preset

// Values returns the current parameter values of p keyed by parameter key.
func Values(p Preset) map[string]any {
	params := p.Parameters()
	values := make(map[string]any, len(params))
	for _, param := range params {
		values[param.String()] = param.Get()
	}
	return values
}
