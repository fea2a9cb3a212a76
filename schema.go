package cargu

// Schema maps the fields of one template to their descriptors. Schemas are
// immutable and safe for concurrent use.
type Schema struct {
	name    string
	fields  []*Field
	byKey   map[string]*Field
	byToken map[string]*Field
	style   Style
	err     error
}

// Name returns the template type name, or "" for schemas built from explicit
// field declarations.
func (s *Schema) Name() string {
	return s.name
}

// Err returns the template defect that makes the whole schema unusable.
func (s *Schema) Err() error {
	return s.err
}

// Fields returns the descriptors in declaration order.
func (s *Schema) Fields() []*Field {
	return append([]*Field(nil), s.fields...)
}

// Field returns the descriptor with the given key.
func (s *Schema) Field(key string) (*Field, bool) {
	f, ok := s.byKey[key]
	return f, ok
}

// Lookup returns the field whose canonical or alias token equals token.
func (s *Schema) Lookup(token string) (*Field, bool) {
	f, ok := s.byToken[token]
	return f, ok
}

// Builder returns an empty builder using the schema's quoting style.
func (s *Schema) Builder() *Builder {
	return &Builder{schema: s, style: s.style, err: s.err}
}
