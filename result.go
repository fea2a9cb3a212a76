package cargu

import (
	"fmt"
	"reflect"
)

// Result holds the values of a successful parse, keyed by field key, in the
// order the values appeared. Absent fields have no entry at all.
type Result struct {
	schema *Schema
	values map[string][]interface{}
}

// Contains reports whether the field appeared at least once.
func (r *Result) Contains(key string) bool {
	return len(r.values[key]) > 0
}

// All returns every value of the field, or an empty slice if it is absent.
func (r *Result) All(key string) []interface{} {
	return append([]interface{}{}, r.values[key]...)
}

// First returns the earliest value of the field, or a NotFoundError.
func (r *Result) First(key string) (interface{}, error) {
	vs := r.values[key]
	if len(vs) == 0 {
		return nil, &NotFoundError{Key: key}
	}
	return vs[0], nil
}

// TryFirst is like First but reports absence with ok instead of an error.
func (r *Result) TryFirst(key string) (v interface{}, ok bool) {
	vs := r.values[key]
	if len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// Keys returns the keys of present fields in schema order.
func (r *Result) Keys() []string {
	keys := []string{}
	for _, f := range r.schema.fields {
		if r.Contains(f.key) {
			keys = append(keys, f.key)
		}
	}
	return keys
}

// Len returns the number of present fields.
func (r *Result) Len() int {
	return len(r.values)
}

// First returns the earliest value of the field as a V. A value of another
// type is reported as a ConversionError.
func First[V any](r *Result, key string) (V, error) {
	var zero V
	v, err := r.First(key)
	if err != nil {
		return zero, err
	}
	return assertValue[V](key, v)
}

// TryFirst is like First but returns ok=false if the field is absent or
// holds a value of another type.
func TryFirst[V any](r *Result, key string) (V, bool) {
	v, ok := r.TryFirst(key)
	if !ok {
		var zero V
		return zero, false
	}
	tv, ok := v.(V)
	return tv, ok
}

// All returns every value of the field as a []V.
func All[V any](r *Result, key string) ([]V, error) {
	vs := r.values[key]
	out := make([]V, 0, len(vs))
	for _, v := range vs {
		tv, err := assertValue[V](key, v)
		if err != nil {
			return nil, err
		}
		out = append(out, tv)
	}
	return out, nil
}

func assertValue[V any](key string, v interface{}) (V, error) {
	tv, ok := v.(V)
	if !ok {
		return tv, &ConversionError{
			Field: key,
			Value: fmt.Sprintf("%v", v),
			Type:  reflect.TypeOf((*V)(nil)).Elem(),
			Err:   fmt.Errorf("value has type %T", v),
		}
	}
	return tv, nil
}
