package cargu

import (
	"fmt"
	"reflect"
)

// Builder accumulates field bindings as tokens and flattens them into a
// command line. Binding errors are sticky: after the first one, further
// bindings are ignored and String, Build and Err report it. A Builder must
// not be used from multiple goroutines at once.
type Builder struct {
	schema *Schema
	style  Style
	tokens []string
	err    error
}

// Bind appends the field's canonical token followed by the encoded value. For
// tuple fields the value must be of the field's tuple type and every element
// is appended in order.
func (b *Builder) Bind(key string, value interface{}) *Builder {
	f, ok := b.field(key)
	if !ok {
		return b
	}
	if f.kind == KindFlag {
		b.err = &KindError{Field: key, Reason: "flag fields take no value, use BindFlag"}
		return b
	}

	parts := []interface{}{value}
	if f.kind == KindTuple {
		if reflect.TypeOf(value) != f.typ {
			b.err = &ConversionError{
				Field: f.Token(),
				Value: fmt.Sprintf("%v", value),
				Type:  f.typ,
				Err:   fmt.Errorf("value has type %T", value),
			}
			return b
		}
		parts = tupleParts(value)
	}

	tokens := []string{f.Token()}
	for i, part := range parts {
		s, err := encodeValue(f.codecs[i], f.Token(), f.elems[i], part)
		if err != nil {
			b.err = err
			return b
		}
		tokens = append(tokens, s)
	}
	b.tokens = append(b.tokens, tokens...)
	return b
}

// BindFlag appends the canonical token of a flag field.
func (b *Builder) BindFlag(key string) *Builder {
	f, ok := b.field(key)
	if !ok {
		return b
	}
	if f.kind != KindFlag {
		b.err = &KindError{Field: key, Reason: fmt.Sprintf("%s field needs a value, use Bind", f.kind)}
		return b
	}
	b.tokens = append(b.tokens, f.Token())
	return b
}

func (b *Builder) field(key string) (*Field, bool) {
	if b.err != nil {
		return nil, false
	}
	f, ok := b.schema.byKey[key]
	if !ok {
		b.err = &NotFoundError{Key: key}
		return nil, false
	}
	if f.err != nil {
		b.err = f.err
		return nil, false
	}
	return f, true
}

// Tokens returns a copy of the unescaped tokens bound so far.
func (b *Builder) Tokens() []string {
	return append([]string{}, b.tokens...)
}

// Err returns the first binding error.
func (b *Builder) Err() error {
	return b.err
}

// Build escapes every token and joins them with single spaces. It does not
// consume the bindings, so it may be called repeatedly and more bindings may
// follow.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return Join(b.style, b.tokens)
}

// String is like Build but returns "" on error.
func (b *Builder) String() string {
	s, err := b.Build()
	if err != nil {
		return ""
	}
	return s
}
