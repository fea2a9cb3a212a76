package cargu

type parseState int

const (
	// stateIdle expects a field token.
	stateIdle parseState = iota
	// stateCollecting expects value tokens for the field entered last.
	stateCollecting
)

type parser struct {
	schema    *Schema
	state     parseState
	field     *Field
	acc       []string
	values    map[string][]interface{}
	satisfied map[string]bool
}

// Parse walks args, which must already be split into tokens, and returns the
// values of every field that appeared. No partial result is returned on
// error.
func (s *Schema) Parse(args []string) (*Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := &parser{
		schema:    s,
		values:    map[string][]interface{}{},
		satisfied: map[string]bool{},
	}
	if err := p.parse(args); err != nil {
		return nil, err
	}
	return &Result{schema: s, values: p.values}, nil
}

func (p *parser) parse(args []string) error {
	for _, tok := range args {
		var err error
		if p.state == stateIdle {
			err = p.enter(tok)
		} else {
			err = p.collect(tok)
		}
		if err != nil {
			return err
		}
	}
	if p.state == stateCollecting {
		return &ArgumentError{Err: ErrTruncatedValue, Token: p.field.Token()}
	}
	return p.checkMandatory()
}

// enter handles a token read in stateIdle.
func (p *parser) enter(tok string) error {
	f, ok := p.schema.byToken[tok]
	if !ok {
		return &ArgumentError{Err: ErrUnrecognizedArgument, Token: tok}
	}
	if f.err != nil {
		return f.err
	}
	if f.unique && len(p.values[f.key]) > 0 {
		return &ArgumentError{Err: ErrDuplicateArgument, Token: tok}
	}
	if f.mandatory {
		p.satisfied[f.key] = true
	}

	if f.kind == KindFlag {
		p.values[f.key] = append(p.values[f.key], Flag(true))
		return nil
	}
	p.state = stateCollecting
	p.field = f
	p.acc = p.acc[:0]
	return nil
}

// collect handles a token read in stateCollecting. Tokens that look like
// field tokens are still taken as values.
func (p *parser) collect(tok string) error {
	f := p.field
	p.acc = append(p.acc, tok)
	if len(p.acc) < len(f.elems) {
		return nil
	}

	decoded := make([]interface{}, len(p.acc))
	for i, s := range p.acc {
		v, err := decodeValue(f.codecs[i], f.Token(), f.elems[i], s)
		if err != nil {
			return err
		}
		decoded[i] = v
	}

	var v interface{}
	if f.kind == KindTuple {
		v = tupleValue(f.typ, decoded)
	} else {
		v = decoded[0]
	}
	p.values[f.key] = append(p.values[f.key], v)

	p.state = stateIdle
	p.field = nil
	p.acc = p.acc[:0]
	return nil
}

// checkMandatory reports every mandatory field that was not seen.
func (p *parser) checkMandatory() error {
	missing := []string{}
	for _, f := range p.schema.fields {
		if f.mandatory && !p.satisfied[f.key] {
			missing = append(missing, f.Token())
		}
	}
	if len(missing) > 0 {
		return &MissingMandatoryError{Tokens: missing}
	}
	return nil
}
