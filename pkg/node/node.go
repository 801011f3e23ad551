package node

import (
	"strings"
)

// Kind discriminates the node variants
type Kind int

const (
	KindEmpty Kind = iota
	KindLiteral
	KindSequence
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindLiteral:
		return "literal"
	case KindSequence:
		return "sequence"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Node is one element of a compiled template tree
type Node interface {
	Kind() Kind
	// String is a debug representation, not the rendered text
	String() string
}

// Literal is already-formatted text
type Literal struct {
	Text string
}

func (l *Literal) Kind() Kind { return KindLiteral }

func (l *Literal) String() string { return "Literal(" + quote(l.Text) + ")" }

// Sequence concatenates its children in order
type Sequence struct {
	Children []Node
}

func (s *Sequence) Kind() Kind { return KindSequence }

func (s *Sequence) String() string {
	parts := make([]string, len(s.Children))
	for i, c := range s.Children {
		parts[i] = c.String()
	}
	return "Sequence[" + strings.Join(parts, ", ") + "]"
}

// Placeholder is resolved against a render context. Args holds the raw text
// following the first space inside the placeholder, or "".
type Placeholder struct {
	Name string
	Args string
}

func (p *Placeholder) Kind() Kind { return KindPlaceholder }

func (p *Placeholder) String() string {
	if p.Args == "" {
		return "Placeholder(" + p.Name + ")"
	}
	return "Placeholder(" + p.Name + " " + quote(p.Args) + ")"
}

type emptyNode struct{}

func (emptyNode) Kind() Kind     { return KindEmpty }
func (emptyNode) String() string { return "Empty" }

// Empty is the "present but blank" sentinel
var Empty Node = emptyNode{}

// IsEmpty reports whether n is the Empty sentinel
func IsEmpty(n Node) bool {
	return n != nil && n.Kind() == KindEmpty
}

// Text returns a literal node for s
func Text(s string) *Literal {
	return &Literal{Text: s}
}

// Var returns a placeholder node
func Var(name string) *Placeholder {
	return &Placeholder{Name: name}
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r < 0x20 || r == 0x7f:
			b.WriteString(`\x`)
			const hex = "0123456789abcdef"
			b.WriteByte(hex[r>>4])
			b.WriteByte(hex[r&0xf])
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
