package cargu

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Codec converts between a field value and its command line text.
type Codec interface {
	Decode(s string) (interface{}, error)
	Encode(v interface{}) (string, error)
}

// CodecFunc lets a Registry supply codecs for additional types. Returning nil
// falls back to the built-in codecs.
type CodecFunc func(t reflect.Type) Codec

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	stringerType        = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// builtinCodec returns the codec for t, or nil if t is not supported.
func builtinCodec(t reflect.Type) Codec {
	// Text marshalling wins over the kind so that named numeric types such
	// as slog.Level keep their own representation.
	if reflect.PtrTo(t).Implements(textUnmarshalerType) {
		return textCodec{t}
	}
	if t == durationType {
		return durationCodec{}
	}
	switch t.Kind() {
	case reflect.String:
		return stringCodec{t}
	case reflect.Bool:
		return boolCodec{t}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intCodec{t}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintCodec{t}
	case reflect.Float32, reflect.Float64:
		return floatCodec{t}
	default:
		return nil
	}
}

// string

type stringCodec struct {
	t reflect.Type
}

func (c stringCodec) Decode(s string) (interface{}, error) {
	return reflect.ValueOf(s).Convert(c.t).Interface(), nil
}

func (c stringCodec) Encode(v interface{}) (string, error) {
	return reflect.ValueOf(v).String(), nil
}

// bool

type boolCodec struct {
	t reflect.Type
}

func (c boolCodec) Decode(s string) (interface{}, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(b).Convert(c.t).Interface(), nil
}

func (c boolCodec) Encode(v interface{}) (string, error) {
	return strconv.FormatBool(reflect.ValueOf(v).Bool()), nil
}

// Signed integers

type intCodec struct {
	t reflect.Type
}

func (c intCodec) Decode(s string) (interface{}, error) {
	n, err := strconv.ParseInt(s, 10, c.t.Bits())
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(n).Convert(c.t).Interface(), nil
}

func (c intCodec) Encode(v interface{}) (string, error) {
	return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), nil
}

// Unsigned integers

type uintCodec struct {
	t reflect.Type
}

func (c uintCodec) Decode(s string) (interface{}, error) {
	n, err := strconv.ParseUint(s, 10, c.t.Bits())
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(n).Convert(c.t).Interface(), nil
}

func (c uintCodec) Encode(v interface{}) (string, error) {
	return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), nil
}

// Floating point. strconv never consults the locale, so the separator is
// always '.'.

type floatCodec struct {
	t reflect.Type
}

func (c floatCodec) Decode(s string) (interface{}, error) {
	f, err := strconv.ParseFloat(s, c.t.Bits())
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(f).Convert(c.t).Interface(), nil
}

func (c floatCodec) Encode(v interface{}) (string, error) {
	return strconv.FormatFloat(reflect.ValueOf(v).Float(), 'g', -1, c.t.Bits()), nil
}

// time.Duration

type durationCodec struct{}

func (durationCodec) Decode(s string) (interface{}, error) {
	return time.ParseDuration(s)
}

func (durationCodec) Encode(v interface{}) (string, error) {
	return v.(time.Duration).String(), nil
}

// encoding.TextUnmarshaler, with TextMarshaler or fmt.Stringer for the
// reverse direction.

type textCodec struct {
	t reflect.Type
}

func (c textCodec) Decode(s string) (interface{}, error) {
	p := reflect.New(c.t)
	if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return p.Elem().Interface(), nil
}

func (c textCodec) Encode(v interface{}) (string, error) {
	// Marshalers may use pointer receivers, so go through an addressable
	// copy.
	p := reflect.New(c.t)
	p.Elem().Set(reflect.ValueOf(v))
	switch {
	case p.Type().Implements(textMarshalerType):
		b, err := p.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case p.Type().Implements(stringerType):
		return p.Interface().(fmt.Stringer).String(), nil
	default:
		return "", errors.Errorf("%s has no text representation", c.t)
	}
}

// decodeValue decodes s with c, reporting failures as ConversionError.
func decodeValue(c Codec, field string, t reflect.Type, s string) (interface{}, error) {
	v, err := c.Decode(s)
	if err != nil {
		return nil, &ConversionError{
			Field: field,
			Value: s,
			Type:  t,
			Err:   errors.Wrap(err, "decode"),
		}
	}
	if v == nil || !reflect.TypeOf(v).AssignableTo(t) {
		return nil, &ConversionError{
			Field: field,
			Value: s,
			Type:  t,
			Err:   errors.Errorf("codec returned %T, want %s", v, t),
		}
	}
	return v, nil
}

// encodeValue encodes v with c after checking it has type t.
func encodeValue(c Codec, field string, t reflect.Type, v interface{}) (string, error) {
	if v == nil || reflect.TypeOf(v) != t {
		return "", &ConversionError{
			Field: field,
			Value: fmt.Sprintf("%v", v),
			Type:  t,
			Err:   errors.Errorf("value has type %T", v),
		}
	}
	s, err := c.Encode(v)
	if err != nil {
		return "", &ConversionError{
			Field: field,
			Value: fmt.Sprintf("%v", v),
			Type:  t,
			Err:   errors.Wrap(err, "encode"),
		}
	}
	return s, nil
}
