package cargu

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors. Every error returned by this package matches exactly one
// of these with errors.Is.
var (
	ErrUnrecognizedArgument = errors.New("unrecognized argument")
	ErrDuplicateArgument    = errors.New("duplicate argument")
	ErrMissingMandatory     = errors.New("missing mandatory argument")
	ErrTruncatedValue       = errors.New("missing value")
	ErrConversion           = errors.New("conversion failed")
	ErrCannotRoundtrip      = errors.New("cannot roundtrip")
	ErrNotFound             = errors.New("not found")
	ErrKind                 = errors.New("unsupported field kind")
	ErrNotSupported         = errors.New("not supported")
)

// ArgumentError is returned when a single token aborts a parse. Err is one of
// ErrUnrecognizedArgument, ErrDuplicateArgument or ErrTruncatedValue.
type ArgumentError struct {
	Err   error
	Token string
}

func (e *ArgumentError) Error() string {
	if e.Err == ErrTruncatedValue {
		return fmt.Sprintf("missing value for %s", e.Token)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Token)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// MissingMandatoryError lists the canonical tokens of every mandatory field
// that did not appear, in schema order.
type MissingMandatoryError struct {
	Tokens []string
}

func (e *MissingMandatoryError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingMandatory, strings.Join(e.Tokens, ", "))
}

func (e *MissingMandatoryError) Unwrap() error {
	return ErrMissingMandatory
}

// ConversionError is returned when a value cannot be decoded from or encoded
// to its textual form.
type ConversionError struct {
	Field string
	Value string
	Type  reflect.Type
	Err   error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
	if e.Type != nil {
		msg = fmt.Sprintf("%s (%s)", msg, e.Type)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// KindError marks a field whose declaration cannot be used. It is recorded
// when the schema is built and only returned once the field is used.
type KindError struct {
	Field  string
	Reason string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: field %s: %s", ErrKind, e.Field, e.Reason)
}

func (e *KindError) Unwrap() error {
	return ErrKind
}

// RoundtripError is returned by the escaper for tokens that no command line
// can represent.
type RoundtripError struct {
	Token string
}

func (e *RoundtripError) Error() string {
	return fmt.Sprintf("%s: %q contains a NUL character", ErrCannotRoundtrip, e.Token)
}

func (e *RoundtripError) Unwrap() error {
	return ErrCannotRoundtrip
}

// NotFoundError is returned by result lookups on absent fields.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
