package preset

// Base implements the bookkeeping part of Preset. Concrete presets embed it.
type Base struct {
	typeName string
	name     string
	mixer    Mixer
	params   []Parameter
	index    map[string]Parameter
	onReset  func()
}

// NewBase creates a Base with the given parameters in declaration order.
func NewBase(typeName string, m Mixer, name string, params ...Parameter) Base {
	index := make(map[string]Parameter, len(params))
	for _, p := range params {
		index[p.Key()] = p
	}
	return Base{
		typeName: typeName,
		name:     name,
		mixer:    m,
		params:   params,
		index:    index,
	}
}

// TypeName returns the registry type name.
func (b *Base) TypeName() string {
	return b.typeName
}

// Name returns the display name.
func (b *Base) Name() string {
	return b.name
}

// Mixer returns the mixer the preset was built for.
func (b *Base) Mixer() Mixer {
	return b.mixer
}

// Parameter looks up a parameter by key.
func (b *Base) Parameter(key string) (Parameter, bool) {
	p, ok := b.index[key]
	return p, ok
}

// Parameters returns all parameters in declaration order.
func (b *Base) Parameters() []Parameter {
	out := make([]Parameter, len(b.params))
	copy(out, b.params)
	return out
}

// OnReset installs the hook run by Reset.
func (b *Base) OnReset(fn func()) {
	b.onReset = fn
}

// Reset runs the installed reset hook, if any.
func (b *Base) Reset() {
	if b.onReset != nil {
		b.onReset()
	}
}
