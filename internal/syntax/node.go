package syntax

import (
	"fmt"
	"strings"
)

// Pos is a 1-based source position.
type Pos struct {
	File   string
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Node is one tagged node of the syntax forest.
type Node interface {
	Pos() Pos
	node()
}

// Forest is the ordered sequence of top-level statements of a document.
type Forest []Node

// Alias is a "@name" reference. Name includes the leading '@'.
type Alias struct {
	Start Pos
	Name  string
}

// Keyword is a "/!* keyword: name */" marker; it stands for itself.
type Keyword struct {
	Start Pos
	Name  string
}

// SimpleIdentifier is a bare system identifier.
type SimpleIdentifier struct {
	Start Pos
	Name  string
}

// URL is a quoted literal carrying a URL scheme. Value excludes the quotes.
type URL struct {
	Start Pos
	Value string
}

// Content is a quoted literal payload. Value is the unescaped text between
// the quotes.
type Content struct {
	Start Pos
	Value string
}

// Member is one element of a set or ordered set with its attributes.
type Member struct {
	Attrs  []Node
	Object Node
}

// Set is an unordered "{...}" construct.
type Set struct {
	Start   Pos
	Members []Member
}

// OrderedSet is an ordered "[...]" construct.
type OrderedSet struct {
	Start   Pos
	Members []Member
}

// Triple is a parenthesized "(a -> b)" construct used as an element.
type Triple struct {
	Start     Pos
	Subject   Node
	Connector string
	Object    Node
}

// SimpleSentence is a level-1 "a | b | c;;" statement.
type SimpleSentence struct {
	Start     Pos
	Subject   Node
	Predicate Node
	Object    Node
}

// Sentence is a "subject connector attrs: objects;;" statement.
type Sentence struct {
	Start     Pos
	Subject   Node
	Connector string
	Attrs     []Node
	Objects   []Node
}

// Synonym is an "a = b;;" statement.
type Synonym struct {
	Start Pos
	Left  Node
	Right Node
}

// IdentifierWithInternalList is an element followed by "(* ... *)".
type IdentifierWithInternalList struct {
	Start    Pos
	Subject  Node
	Internal *InternalGroup
}

// InternalGroup is the "(* ... *)" block attached to an identifier.
type InternalGroup struct {
	Start Pos
	List  *InternalListGroup
}

// InternalListGroup is the list of sentences inside an InternalGroup.
type InternalListGroup struct {
	Start     Pos
	Sentences []InternalSentence
}

// InternalSentence is one "connector attrs: objects;;" line of an internal
// list. Its subject is the enclosing identifier.
type InternalSentence struct {
	Start     Pos
	Connector string
	Attrs     []Node
	Objects   []Node
}

func (n *Alias) Pos() Pos                      { return n.Start }
func (n *Keyword) Pos() Pos                    { return n.Start }
func (n *SimpleIdentifier) Pos() Pos           { return n.Start }
func (n *URL) Pos() Pos                        { return n.Start }
func (n *Content) Pos() Pos                    { return n.Start }
func (n *Set) Pos() Pos                        { return n.Start }
func (n *OrderedSet) Pos() Pos                 { return n.Start }
func (n *Triple) Pos() Pos                     { return n.Start }
func (n *SimpleSentence) Pos() Pos             { return n.Start }
func (n *Sentence) Pos() Pos                   { return n.Start }
func (n *Synonym) Pos() Pos                    { return n.Start }
func (n *IdentifierWithInternalList) Pos() Pos { return n.Start }
func (n *InternalGroup) Pos() Pos              { return n.Start }
func (n *InternalListGroup) Pos() Pos          { return n.Start }

func (*Alias) node()                      {}
func (*Keyword) node()                    {}
func (*SimpleIdentifier) node()           {}
func (*URL) node()                        {}
func (*Content) node()                    {}
func (*Set) node()                        {}
func (*OrderedSet) node()                 {}
func (*Triple) node()                     {}
func (*SimpleSentence) node()             {}
func (*Sentence) node()                   {}
func (*Synonym) node()                    {}
func (*IdentifierWithInternalList) node() {}
func (*InternalGroup) node()              {}
func (*InternalListGroup) node()          {}

// Render returns the canonical source text of an element. It is the literal
// text used to identify constructs that have no name of their own, such as
// triples.
func Render(n Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Alias:
		b.WriteString(n.Name)
	case *Keyword:
		b.WriteString(n.Name)
	case *SimpleIdentifier:
		b.WriteString(n.Name)
	case *URL:
		b.WriteString(Quote(n.Value))
	case *Content:
		b.WriteString(Quote(n.Value))
	case *Set:
		renderMembers(b, "{", "}", n.Members)
	case *OrderedSet:
		renderMembers(b, "[", "]", n.Members)
	case *Triple:
		b.WriteByte('(')
		render(b, n.Subject)
		b.WriteByte(' ')
		b.WriteString(n.Connector)
		b.WriteByte(' ')
		render(b, n.Object)
		b.WriteByte(')')
	case *IdentifierWithInternalList:
		render(b, n.Subject)
		if n.Internal != nil {
			b.WriteString(" (* ")
			for _, s := range n.Internal.List.Sentences {
				b.WriteString(s.Connector)
				b.WriteByte(' ')
				renderObjects(b, s.Attrs, s.Objects)
				b.WriteString(";; ")
			}
			b.WriteString("*)")
		}
	default:
		fmt.Fprintf(b, "<%T>", n)
	}
}

func renderMembers(b *strings.Builder, open, close string, members []Member) {
	b.WriteString(open)
	for i, m := range members {
		if i > 0 {
			b.WriteString(", ")
		}
		for _, a := range m.Attrs {
			render(b, a)
			b.WriteString(": ")
		}
		render(b, m.Object)
	}
	b.WriteString(close)
}

func renderObjects(b *strings.Builder, attrs, objects []Node) {
	for _, a := range attrs {
		render(b, a)
		b.WriteString(": ")
	}
	for i, o := range objects {
		if i > 0 {
			b.WriteString(", ")
		}
		render(b, o)
	}
}

// Quote wraps s in double quotes, escaping quotes and backslashes.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
