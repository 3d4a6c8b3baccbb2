package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/taxonomy"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokAlias
	tokKeyword
	tokString
	tokConnector
	tokPipe
	tokEquals
	tokColon
	tokComma
	tokSemi
	tokEnd
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
	tokIntOpen
	tokIntClose
)

var tokenNames = map[tokenKind]string{
	tokEOF:       "end of input",
	tokName:      "identifier",
	tokAlias:     "alias",
	tokKeyword:   "keyword",
	tokString:    "literal",
	tokConnector: "connector",
	tokPipe:      "'|'",
	tokEquals:    "'='",
	tokColon:     "':'",
	tokComma:     "','",
	tokSemi:      "';'",
	tokEnd:       "';;'",
	tokLBrace:    "'{'",
	tokRBrace:    "'}'",
	tokLBracket:  "'['",
	tokRBracket:  "']'",
	tokLParen:    "'('",
	tokRParen:    "')'",
	tokIntOpen:   "'(*'",
	tokIntClose:  "'*)'",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind tokenKind
	text string
	pos  Pos
}

type lexer struct {
	file string
	src  string
	base Pos
	off  int
	line int
	col  int
}

func newLexer(base Pos, src string) *lexer {
	return &lexer{file: base.File, src: src, base: base, line: base.Line, col: base.Column}
}

func (l *lexer) pos() Pos {
	return Pos{File: l.file, Line: l.line, Column: l.col}
}

func (l *lexer) errorf(p Pos, format string, args ...any) *SyntaxError {
	return newSyntaxError(l.src, l.base, p, format, args...)
}

// advance moves past n bytes, keeping line and column current.
func (l *lexer) advance(n int) {
	end := l.off + n
	for l.off < end {
		r, size := utf8.DecodeRuneInString(l.src[l.off:])
		l.off += size
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
}

func (l *lexer) rest() string { return l.src[l.off:] }

func (l *lexer) skipSpaceAndComments() *SyntaxError {
	for l.off < len(l.src) {
		rest := l.rest()
		r, size := utf8.DecodeRuneInString(rest)
		switch {
		case unicode.IsSpace(r):
			l.advance(size)
		case strings.HasPrefix(rest, "/!*"):
			return nil
		case strings.HasPrefix(rest, "/*"):
			start := l.pos()
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return l.errorf(start, "unterminated comment")
			}
			l.advance(end + 4)
		case strings.HasPrefix(rest, "//"):
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				end = len(rest)
			}
			l.advance(end)
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) tokens() ([]token, error) {
	var out []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.kind == tokEOF {
			return out, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, err
	}
	start := l.pos()
	if l.off >= len(l.src) {
		return token{kind: tokEOF, pos: start}, nil
	}
	rest := l.rest()

	// Two-character punctuation before connectors and single characters.
	switch {
	case strings.HasPrefix(rest, ";;"):
		l.advance(2)
		return token{kind: tokEnd, text: ";;", pos: start}, nil
	case strings.HasPrefix(rest, "(*"):
		l.advance(2)
		return token{kind: tokIntOpen, text: "(*", pos: start}, nil
	case strings.HasPrefix(rest, "*)"):
		l.advance(2)
		return token{kind: tokIntClose, text: "*)", pos: start}, nil
	case strings.HasPrefix(rest, "/!*"):
		return l.keyword(start)
	}

	if c, ok := taxonomy.MatchConnector(rest); ok {
		l.advance(len(c))
		return token{kind: tokConnector, text: c, pos: start}, nil
	}

	single := map[byte]tokenKind{
		'|': tokPipe, '=': tokEquals, ':': tokColon, ',': tokComma, ';': tokSemi,
		'{': tokLBrace, '}': tokRBrace, '[': tokLBracket, ']': tokRBracket,
		'(': tokLParen, ')': tokRParen,
	}
	if kind, ok := single[rest[0]]; ok {
		l.advance(1)
		return token{kind: kind, text: rest[:1], pos: start}, nil
	}

	switch {
	case rest[0] == '"':
		return l.quoted(start)
	case rest[0] == '@':
		n := nameLen(rest[1:])
		if n == 0 {
			return token{}, l.errorf(start, "expected alias name after '@'")
		}
		l.advance(n + 1)
		return token{kind: tokAlias, text: rest[:n+1], pos: start}, nil
	}

	if n := nameLen(rest); n > 0 {
		l.advance(n)
		return token{kind: tokName, text: rest[:n], pos: start}, nil
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return token{}, l.errorf(start, "unexpected character %q", r)
}

// keyword lexes "/!* keyword: name */".
func (l *lexer) keyword(start Pos) (token, error) {
	rest := l.rest()
	end := strings.Index(rest, "*/")
	if end < 0 {
		return token{}, l.errorf(start, "unterminated keyword")
	}
	body := strings.TrimSpace(rest[3:end])
	label, name, ok := strings.Cut(body, ":")
	name = strings.TrimSpace(name)
	if !ok || strings.TrimSpace(label) != "keyword" || name == "" || nameLen(name) != len(name) {
		return token{}, l.errorf(start, "malformed keyword %q", rest[:end+2])
	}
	l.advance(end + 2)
	return token{kind: tokKeyword, text: name, pos: start}, nil
}

// quoted lexes a double-quoted literal. The token text is the unescaped
// interior; only \" and \\ are escapes.
func (l *lexer) quoted(start Pos) (token, error) {
	rest := l.rest()
	var b strings.Builder
	i := 1
	for i < len(rest) {
		switch rest[i] {
		case '"':
			l.advance(i + 1)
			return token{kind: tokString, text: b.String(), pos: start}, nil
		case '\\':
			if i+1 < len(rest) && (rest[i+1] == '"' || rest[i+1] == '\\') {
				b.WriteByte(rest[i+1])
				i += 2
				continue
			}
		}
		b.WriteByte(rest[i])
		i++
	}
	return token{}, l.errorf(start, "unterminated literal")
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r == '#' || unicode.Is(unicode.Mn, r)
}

// nameLen returns the byte length of the identifier prefixing s.
func nameLen(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if n == 0 && !isNameStart(r) {
			return 0
		}
		if !isNameChar(r) {
			break
		}
		// "a_->b": stop the name where a connector begins.
		if n > 0 && (r == '_' || r == '.') {
			if _, ok := taxonomy.MatchConnector(s[n:]); ok {
				break
			}
		}
		n += size
	}
	return n
}

// isURL reports whether a literal starts with a "scheme://" prefix.
func isURL(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	for j, r := range s[:i] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case j > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
