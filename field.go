package cargu

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/huandu/xstrings"
)

// Flag is the value type of zero-argument fields. Presence alone is the
// value: a parsed flag field holds Flag(true) once per occurrence.
type Flag bool

var flagType = reflect.TypeOf(Flag(false))

// ValueKind describes how many value tokens a field consumes.
type ValueKind int

const (
	KindFlag ValueKind = iota
	KindScalar
	KindTuple
)

func (k ValueKind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindScalar:
		return "scalar"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// FieldSpec is what a template provider declares for one field.
type FieldSpec struct {
	// Name is the stable key of the field.
	Name string
	// Token overrides the canonical token, which is otherwise "--" followed
	// by the kebab-cased Name.
	Token     string
	Aliases   []string
	Mandatory bool
	Unique    bool
	Help      string
	// Type is Flag for zero-argument fields, a TupleN type or array for
	// tuple fields, and any codec-supported type for scalars.
	Type reflect.Type

	err error
}

// Provider may be implemented by a template to declare its fields
// explicitly instead of through struct tags. The result must depend only on
// the template's type.
type Provider interface {
	CarguFields() []FieldSpec
}

// Field is the immutable descriptor of a single template field.
type Field struct {
	key       string
	tokens    []string
	mandatory bool
	unique    bool
	help      string
	kind      ValueKind
	typ       reflect.Type
	elems     []reflect.Type
	codecs    []Codec
	err       error
}

func (f *Field) Key() string {
	return f.key
}

// Token returns the canonical token.
func (f *Field) Token() string {
	return f.tokens[0]
}

// Tokens returns the canonical token followed by the aliases.
func (f *Field) Tokens() []string {
	return append([]string(nil), f.tokens...)
}

func (f *Field) Mandatory() bool {
	return f.mandatory
}

func (f *Field) Unique() bool {
	return f.unique
}

func (f *Field) Help() string {
	return f.help
}

func (f *Field) Kind() ValueKind {
	return f.kind
}

// Type returns the declared value type.
func (f *Field) Type() reflect.Type {
	return f.typ
}

// Arity returns the number of value tokens consumed after the field's token.
func (f *Field) Arity() int {
	switch f.kind {
	case KindFlag:
		return 0
	case KindScalar:
		return 1
	default:
		return len(f.elems)
	}
}

// Err returns the declaration defect of the field, if any. A defective field
// fails every parse or binding that uses it.
func (f *Field) Err() error {
	return f.err
}

func (r *Registry) newField(spec FieldSpec) *Field {
	f := &Field{
		key:       spec.Name,
		mandatory: spec.Mandatory,
		unique:    spec.Unique,
		help:      spec.Help,
		typ:       spec.Type,
		err:       spec.err,
	}

	token := spec.Token
	if token == "" {
		token = "--" + xstrings.ToKebabCase(spec.Name)
	}
	f.tokens = append([]string{token}, spec.Aliases...)

	if err := r.resolveKind(f); err != nil && f.err == nil {
		f.err = err
	}
	if f.err == nil && spec.Name == "" {
		f.err = &KindError{Field: token, Reason: "empty field name"}
	}
	return f
}

// resolveKind fills in kind, elems and codecs from the declared type.
func (r *Registry) resolveKind(f *Field) error {
	t := f.typ
	switch {
	case t == nil:
		f.kind = KindScalar
		return &KindError{Field: f.key, Reason: "no value type"}
	case t == flagType:
		f.kind = KindFlag
		return nil
	case t.Kind() == reflect.Array && r.codecFor(t) != nil:
		// arrays with their own text form, like fixed size IDs, are one token
		f.kind = KindScalar
		f.elems = []reflect.Type{t}
	case isTupleType(t):
		f.kind = KindTuple
		f.elems = tupleElems(t)
		if n := len(f.elems); n < 1 || n > MaxTupleArity {
			return &KindError{
				Field:  f.key,
				Reason: fmt.Sprintf("tuple arity %d not in 1..%d", n, MaxTupleArity),
			}
		}
	default:
		f.kind = KindScalar
		f.elems = []reflect.Type{t}
	}

	f.codecs = make([]Codec, len(f.elems))
	for i, et := range f.elems {
		c := r.codecFor(et)
		if c == nil {
			return &ConversionError{
				Field: f.tokens[0],
				Type:  et,
				Err:   fmt.Errorf("no codec for type %s", et),
			}
		}
		f.codecs[i] = c
	}
	return nil
}

// fieldSpecsFromStruct reads the field declarations of a struct type from its
// cargu struct tags. Tag problems are attached to the affected spec.
func fieldSpecsFromStruct(t reflect.Type) []FieldSpec {
	specs := []FieldSpec{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		// ignore unexported fields
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}

		tags, err := parseFieldTags(sf.Tag)
		if err != nil {
			err = &KindError{Field: sf.Name, Reason: err.Error()}
		}

		// ignore fields with the "-" tag (like json)
		if tags.exclude {
			continue
		}

		if (sf.Anonymous || tags.embed) && sf.Type.Kind() == reflect.Struct && !isTupleType(sf.Type) {
			// embedded struct, recurse
			inner := fieldSpecsFromStruct(sf.Type)
			if err != nil {
				for i := range inner {
					if inner[i].err == nil {
						inner[i].err = err
					}
				}
				if len(inner) == 0 {
					inner = append(inner, FieldSpec{Name: sf.Name, Type: sf.Type, err: err})
				}
			}
			specs = append(specs, inner...)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		specs = append(specs, FieldSpec{
			Name:      sf.Name,
			Token:     tags.token,
			Aliases:   tags.aliases,
			Mandatory: tags.mandatory,
			Unique:    tags.unique,
			Help:      tags.help,
			Type:      sf.Type,
			err:       err,
		})
	}
	return specs
}

type fieldTags struct {
	exclude   bool
	embed     bool
	mandatory bool
	unique    bool
	token     string
	aliases   []string
	help      string
}

func parseFieldTags(tag reflect.StructTag) (fieldTags, error) {
	t := fieldTags{}
	unknown := []string{}
	for _, e := range parseStructTagInner(tag.Get("cargu")) {
		switch e.key {
		case "-":
			t.exclude = true
		case "embed":
			t.embed = true
		case "mandatory", "required":
			t.mandatory = true
		case "unique":
			t.unique = true
		case "once":
			t.mandatory = true
			t.unique = true
		case "token":
			t.token = e.value
		case "alias":
			t.aliases = append(t.aliases, e.value)
		case "help":
			t.help = e.value
		default:
			unknown = append(unknown, e.key)
		}
	}
	if len(unknown) > 0 {
		return t, fmt.Errorf("unknown tags: %s", strings.Join(unknown, ", "))
	}
	return t, nil
}
