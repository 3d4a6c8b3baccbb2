package syntax

// DefaultMaxDepth bounds element nesting in a single document.
const DefaultMaxDepth = 256

// Parser parses SCs source text into a Forest.
type Parser struct {
	// MaxDepth bounds nesting of sets, triples and internal lists.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses src with the default nesting limit. name is used in error
// positions only.
func Parse(name string, src []byte) (Forest, error) {
	return Parser{}.Parse(name, src)
}

// Parse parses src into a Forest. Any failure is a *SyntaxError.
func (p Parser) Parse(name string, src []byte) (Forest, error) {
	return p.ParseAt(Pos{File: name, Line: 1, Column: 1}, src)
}

// ParseAt parses src as if it began at start in an enclosing file, so node
// and error positions point into that file. Used for text embedded in a
// literal.
func (p Parser) ParseAt(start Pos, src []byte) (Forest, error) {
	if start.Line < 1 {
		start.Line = 1
	}
	if start.Column < 1 {
		start.Column = 1
	}
	text := string(src)
	toks, err := newLexer(start, text).tokens()
	if err != nil {
		return nil, err
	}
	limit := p.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	ps := &parseState{src: text, base: start, toks: toks, maxDepth: limit}
	return ps.document()
}

type parseState struct {
	src      string
	base     Pos
	toks     []token
	i        int
	depth    int
	maxDepth int
}

func (p *parseState) peek() token { return p.toks[p.i] }

func (p *parseState) take() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parseState) errorf(t token, format string, args ...any) *SyntaxError {
	return newSyntaxError(p.src, p.base, t.pos, format, args...)
}

func (p *parseState) expect(kind tokenKind) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %s", kind, describe(t))
	}
	return p.take(), nil
}

func describe(t token) string {
	switch t.kind {
	case tokEOF:
		return t.kind.String()
	case tokString:
		return "literal " + Quote(t.text)
	default:
		return t.kind.String() + " " + `"` + t.text + `"`
	}
}

func (p *parseState) enter(t token) error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(t, "nesting too deep (limit %d)", p.maxDepth)
	}
	return nil
}

func (p *parseState) leave() { p.depth-- }

func (p *parseState) document() (Forest, error) {
	var forest Forest
	for p.peek().kind != tokEOF {
		n, err := p.statement()
		if err != nil {
			return nil, err
		}
		forest = append(forest, n)
	}
	return forest, nil
}

func (p *parseState) statement() (Node, error) {
	first := p.peek()
	subject, err := p.element()
	if err != nil {
		return nil, err
	}

	var stmt Node
	switch t := p.peek(); t.kind {
	case tokPipe:
		p.take()
		pred, err := p.predicate()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokPipe); err != nil {
			return nil, err
		}
		obj, err := p.element()
		if err != nil {
			return nil, err
		}
		stmt = &SimpleSentence{Start: first.pos, Subject: subject, Predicate: pred, Object: obj}
	case tokEquals:
		p.take()
		right, err := p.element()
		if err != nil {
			return nil, err
		}
		stmt = &Synonym{Start: first.pos, Left: subject, Right: right}
	case tokIntOpen:
		group, err := p.internal()
		if err != nil {
			return nil, err
		}
		stmt = &IdentifierWithInternalList{Start: first.pos, Subject: subject, Internal: group}
	case tokConnector:
		p.take()
		attrs, objects, err := p.objectList()
		if err != nil {
			return nil, err
		}
		stmt = &Sentence{Start: first.pos, Subject: subject, Connector: t.text, Attrs: attrs, Objects: objects}
	default:
		return nil, p.errorf(t, "expected connector, '|', '=' or '(*', found %s", describe(t))
	}

	if _, err := p.expect(tokEnd); err != nil {
		return nil, err
	}
	return stmt, nil
}

// predicate parses the middle element of "a | p | b". A bare connector is
// accepted there and names the arc verbatim.
func (p *parseState) predicate() (Node, error) {
	if t := p.peek(); t.kind == tokConnector {
		p.take()
		return &SimpleIdentifier{Start: t.pos, Name: t.text}, nil
	}
	return p.element()
}

// objectList parses "attr: attr: obj, obj".
func (p *parseState) objectList() (attrs, objects []Node, err error) {
	for {
		t := p.peek()
		n, err := p.object()
		if err != nil {
			return nil, nil, err
		}
		if p.peek().kind != tokColon {
			objects = append(objects, n)
			break
		}
		if _, ok := n.(*IdentifierWithInternalList); ok {
			return nil, nil, p.errorf(t, "attribute cannot carry an internal list")
		}
		p.take()
		attrs = append(attrs, n)
	}
	for p.peek().kind == tokComma {
		p.take()
		n, err := p.object()
		if err != nil {
			return nil, nil, err
		}
		objects = append(objects, n)
	}
	return attrs, objects, nil
}

func (p *parseState) object() (Node, error) {
	first := p.peek()
	el, err := p.element()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokIntOpen {
		return el, nil
	}
	group, err := p.internal()
	if err != nil {
		return nil, err
	}
	return &IdentifierWithInternalList{Start: first.pos, Subject: el, Internal: group}, nil
}

func (p *parseState) internal() (*InternalGroup, error) {
	open, err := p.expect(tokIntOpen)
	if err != nil {
		return nil, err
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	list := &InternalListGroup{Start: p.peek().pos}
	for p.peek().kind != tokIntClose {
		conn, err := p.expect(tokConnector)
		if err != nil {
			return nil, err
		}
		attrs, objects, err := p.objectList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokEnd); err != nil {
			return nil, err
		}
		list.Sentences = append(list.Sentences, InternalSentence{
			Start:     conn.pos,
			Connector: conn.text,
			Attrs:     attrs,
			Objects:   objects,
		})
	}
	p.take()
	return &InternalGroup{Start: open.pos, List: list}, nil
}

func (p *parseState) element() (Node, error) {
	t := p.peek()
	switch t.kind {
	case tokName:
		p.take()
		return &SimpleIdentifier{Start: t.pos, Name: t.text}, nil
	case tokAlias:
		p.take()
		return &Alias{Start: t.pos, Name: t.text}, nil
	case tokKeyword:
		p.take()
		return &Keyword{Start: t.pos, Name: t.text}, nil
	case tokString:
		p.take()
		if isURL(t.text) {
			return &URL{Start: t.pos, Value: t.text}, nil
		}
		return &Content{Start: t.pos, Value: t.text}, nil
	case tokLBrace, tokLBracket, tokLParen:
	default:
		return nil, p.errorf(t, "expected element, found %s", describe(t))
	}

	if err := p.enter(t); err != nil {
		return nil, err
	}
	defer p.leave()
	p.take()

	switch t.kind {
	case tokLBrace:
		members, err := p.members(tokRBrace)
		if err != nil {
			return nil, err
		}
		return &Set{Start: t.pos, Members: members}, nil
	case tokLBracket:
		members, err := p.members(tokRBracket)
		if err != nil {
			return nil, err
		}
		return &OrderedSet{Start: t.pos, Members: members}, nil
	default:
		subject, err := p.element()
		if err != nil {
			return nil, err
		}
		conn, err := p.expect(tokConnector)
		if err != nil {
			return nil, err
		}
		object, err := p.element()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return &Triple{Start: t.pos, Subject: subject, Connector: conn.text, Object: object}, nil
	}
}

// members parses set members up to the closing token. Members are
// separated by ',' or ';'.
func (p *parseState) members(closing tokenKind) ([]Member, error) {
	var out []Member
	if p.peek().kind == closing {
		p.take()
		return out, nil
	}
	for {
		var m Member
		for {
			t := p.peek()
			n, err := p.object()
			if err != nil {
				return nil, err
			}
			if p.peek().kind != tokColon {
				m.Object = n
				break
			}
			if _, ok := n.(*IdentifierWithInternalList); ok {
				return nil, p.errorf(t, "attribute cannot carry an internal list")
			}
			p.take()
			m.Attrs = append(m.Attrs, n)
		}
		out = append(out, m)

		switch t := p.peek(); t.kind {
		case tokComma, tokSemi:
			p.take()
		case closing:
			p.take()
			return out, nil
		default:
			return nil, p.errorf(t, "expected ',', ';' or %s, found %s", closing, describe(t))
		}
	}
}
