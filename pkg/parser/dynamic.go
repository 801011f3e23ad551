package parser

import (
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/node"
)

// DynamicFunc replaces a ${name args} placeholder at parse time. Returning
// nil keeps the placeholder for render time.
type DynamicFunc func(name, args string) node.Node

// expandDynamic splits literals around ${name} / ${name args} tokens,
// producing Placeholder nodes, or the bound substitution when bind is set.
// "\$" becomes "$".
func expandDynamic(n node.Node, bind DynamicFunc) node.Node {
	return node.MapLiterals(n, func(l *node.Literal) node.Node {
		if !strings.Contains(l.Text, "$") {
			return l
		}
		return scanDynamic(l.Text, bind)
	})
}

func scanDynamic(s string, bind DynamicFunc) node.Node {
	var parts []node.Node
	var b strings.Builder

	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '$' {
			b.WriteByte('$')
			i += 2
			continue
		}
		if s[i] == '$' {
			if name, args, n, ok := matchDynamic(s[i:]); ok {
				parts = append(parts, node.Text(b.String()))
				b.Reset()
				parts = append(parts, substitute(name, args, bind))
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	parts = append(parts, node.Text(b.String()))
	return node.Seq(parts...)
}

func substitute(name, args string, bind DynamicFunc) node.Node {
	if bind != nil {
		if n := bind(name, args); n != nil {
			return n
		}
	}
	return &node.Placeholder{Name: name, Args: args}
}

// matchDynamic matches "${name}" or "${name args}" at the start of s
func matchDynamic(s string) (name, args string, n int, ok bool) {
	if len(s) < 3 || s[1] != '{' {
		return "", "", 0, false
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return "", "", 0, false
	}
	body := s[2:end]
	name, args, _ = strings.Cut(body, " ")
	if name == "" {
		return "", "", 0, false
	}
	for _, r := range name {
		if !isNameRune(r) {
			return "", "", 0, false
		}
	}
	return name, args, end + 1, true
}

func isNameRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ':' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
