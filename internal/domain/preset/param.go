package preset

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

// Param is a typed Parameter. Values passed to Set are weakly decoded into T,
// so a float64 read from JSON can land in an int parameter and vice versa.
// Numbers that would not survive the conversion unchanged are rejected.
type Param[T any] struct {
	key   string
	value T
	rule  string // validator tag applied on Set (e.g. "gte=0,lte=1")
}

// NewParam creates a parameter holding def. rule is an optional validator tag.
func NewParam[T any](key string, def T, rule string) *Param[T] {
	return &Param[T]{key: key, value: def, rule: rule}
}

// Key returns the parameter key.
func (p *Param[T]) Key() string {
	return p.key
}

// String returns the parameter key.
func (p *Param[T]) String() string {
	return p.key
}

// Get returns the current value.
func (p *Param[T]) Get() any {
	return p.value
}

// Value returns the current value with its concrete type.
func (p *Param[T]) Value() T {
	return p.value
}

// Set decodes value into T, validates it and stores it.
// On failure the previous value is kept.
func (p *Param[T]) Set(value any) error {
	if value == nil {
		return errors.Newf("parameter %s: nil value", p.key)
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(exactNumber),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create decoder")
	}
	if err := decoder.Decode(value); err != nil {
		return errors.Wrapf(err, "parameter %s", p.key)
	}

	if p.rule != "" {
		if err := validate.Var(out, p.rule); err != nil {
			return errors.Wrapf(err, "parameter %s", p.key)
		}
	}

	p.value = out
	return nil
}

// exactNumber rejects numeric conversions into integer types that would lose
// a fraction or overflow.
func exactNumber(from, to reflect.Type, data any) (any, error) {
	v := reflect.ValueOf(data)
	target := reflect.Zero(to)

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch from.Kind() {
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || target.OverflowInt(int64(f)) {
				return nil, errors.Newf("%v is not a valid %s", data, to)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if target.OverflowInt(v.Int()) {
				return nil, errors.Newf("%v overflows %s", data, to)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v.Uint() > math.MaxInt64 || target.OverflowInt(int64(v.Uint())) {
				return nil, errors.Newf("%v overflows %s", data, to)
			}
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch from.Kind() {
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || target.OverflowUint(uint64(f)) {
				return nil, errors.Newf("%v is not a valid %s", data, to)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if v.Int() < 0 || target.OverflowUint(uint64(v.Int())) {
				return nil, errors.Newf("%v overflows %s", data, to)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if target.OverflowUint(v.Uint()) {
				return nil, errors.Newf("%v overflows %s", data, to)
			}
		}
	}
	return data, nil
}
