package cargu

import (
	"log/slog"
	"reflect"
	"sync"
)

// Registry builds and caches one Schema per template type. Configure its
// exported fields before first use; after that a Registry is safe for
// concurrent use.
type Registry struct {
	// Codec, if set, is consulted before the built-in codecs.
	Codec CodecFunc
	// Logger receives schema build records. Nil disables logging.
	Logger *slog.Logger
	// Style is the quoting convention used by builders of this registry's
	// schemas.
	Style Style

	schemas sync.Map // reflect.Type -> *schemaEntry
}

type schemaEntry struct {
	once   sync.Once
	schema *Schema
}

// DefaultRegistry backs the package-level functions.
var DefaultRegistry = &Registry{}

// SchemaFor returns the schema of the template's type, building it on first
// use. The template is a struct value, a pointer to one, or a Provider. The
// returned schema is never nil; defects surface when it is used.
func (r *Registry) SchemaFor(template interface{}) *Schema {
	t := reflect.TypeOf(template)
	if t == nil {
		return &Schema{
			name:  "<nil>",
			err:   &KindError{Field: "<nil>", Reason: "nil template"},
			style: r.Style,
		}
	}

	e, _ := r.schemas.LoadOrStore(t, &schemaEntry{})
	entry := e.(*schemaEntry)
	entry.once.Do(func() {
		entry.schema = r.buildSchema(t, template)
	})
	return entry.schema
}

func (r *Registry) buildSchema(t reflect.Type, template interface{}) *Schema {
	if p, ok := template.(Provider); ok {
		s := r.NewSchema(p.CarguFields()...)
		s.name = t.String()
		return s
	}

	st := t
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		r.warn("template is not a struct", "type", t.String())
		return &Schema{
			name:  t.String(),
			err:   &KindError{Field: t.String(), Reason: "template must be a struct or struct pointer"},
			style: r.Style,
		}
	}

	s := r.NewSchema(fieldSpecsFromStruct(st)...)
	s.name = st.String()
	return s
}

// NewSchema builds an uncached schema from explicit field declarations.
func (r *Registry) NewSchema(specs ...FieldSpec) *Schema {
	s := &Schema{
		fields:  make([]*Field, 0, len(specs)),
		byKey:   make(map[string]*Field, len(specs)),
		byToken: map[string]*Field{},
		style:   r.Style,
	}
	for _, spec := range specs {
		f := r.newField(spec)
		if f.err != nil {
			r.warn("defective field", "field", f.key, "err", f.err)
		}
		s.fields = append(s.fields, f)
		s.byKey[f.key] = f
		if f.key == "" {
			// unreachable by token, a literal "--" stays unrecognized
			continue
		}
		for _, tok := range f.tokens {
			s.byToken[tok] = f
		}
	}
	r.debug("built schema", "fields", len(s.fields))
	return s
}

// Parse parses args against the schema of template.
func (r *Registry) Parse(template interface{}, args []string) (*Result, error) {
	return r.SchemaFor(template).Parse(args)
}

// Builder returns an empty builder for the schema of template.
func (r *Registry) Builder(template interface{}) *Builder {
	return r.SchemaFor(template).Builder()
}

func (r *Registry) codecFor(t reflect.Type) Codec {
	if r.Codec != nil {
		if c := r.Codec(t); c != nil {
			return c
		}
	}
	return builtinCodec(t)
}

func (r *Registry) debug(msg string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Debug(msg, args...)
	}
}

func (r *Registry) warn(msg string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Warn(msg, args...)
	}
}

// SchemaFor is a convenience function for DefaultRegistry.SchemaFor.
func SchemaFor(template interface{}) *Schema {
	return DefaultRegistry.SchemaFor(template)
}

// NewSchema is a convenience function for DefaultRegistry.NewSchema.
func NewSchema(specs ...FieldSpec) *Schema {
	return DefaultRegistry.NewSchema(specs...)
}

// Parse is a convenience function for DefaultRegistry.Parse.
func Parse(template interface{}, args []string) (*Result, error) {
	return DefaultRegistry.Parse(template, args)
}

// NewBuilder is a convenience function for DefaultRegistry.Builder.
func NewBuilder(template interface{}) *Builder {
	return DefaultRegistry.Builder(template)
}
