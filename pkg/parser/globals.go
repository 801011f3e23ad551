package parser

import (
	"strings"

	"github.com/arthur-debert/chatstyle/internal/version"
	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/arthur-debert/chatstyle/pkg/registry"
)

// Global produces the value of a context-independent placeholder such as
// %server:name%. It receives the raw argument text, or "".
type Global func(args string) string

// GlobalLookup is the read side of a global placeholder registry
type GlobalLookup interface {
	Lookup(name string) (Global, bool)
}

// Constant returns a Global that ignores its arguments
func Constant(value string) Global {
	return func(string) string { return value }
}

// NewGlobals builds a registry holding the built-in globals plus one
// constant per entry of values. Entries override built-ins.
func NewGlobals(values map[string]string) registry.Registry[Global] {
	reg := registry.New[Global]()
	registry.MustRegister(reg, "chatstyle:version", Constant(version.Version))
	for name, value := range values {
		if err := reg.Set(name, Constant(value)); err != nil {
			log.Warn().Err(err).Str("global", name).Msg("Skipping global placeholder")
		}
	}
	return reg
}

// expandGlobals substitutes known %ns:path% and %ns:path args% tokens inside
// every literal. Unknown tokens stay as text. "\%" becomes "%".
func expandGlobals(n node.Node, globals GlobalLookup) node.Node {
	return node.MapLiterals(n, func(l *node.Literal) node.Node {
		if !strings.Contains(l.Text, "%") {
			return l
		}
		return node.Text(scanGlobals(l.Text, globals))
	})
}

func scanGlobals(s string, globals GlobalLookup) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}
		if s[i] == '%' && globals != nil {
			if name, args, n, ok := matchGlobal(s[i:]); ok {
				if g, found := globals.Lookup(name); found {
					b.WriteString(escapeDynamic(g(args)))
					i += n
					continue
				}
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// matchGlobal matches "%ns:path%" or "%ns:path args%" at the start of s
func matchGlobal(s string) (name, args string, n int, ok bool) {
	end := strings.IndexByte(s[1:], '%')
	if end < 0 {
		return "", "", 0, false
	}
	body := s[1 : end+1]
	name, args, _ = strings.Cut(body, " ")

	ns, path, found := strings.Cut(name, ":")
	if !found || ns == "" || path == "" {
		return "", "", 0, false
	}
	for _, r := range ns {
		if !isIdentRune(r) {
			return "", "", 0, false
		}
	}
	for _, r := range path {
		if r != '/' && !isIdentRune(r) {
			return "", "", 0, false
		}
	}
	return name, args, end + 2, true
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// escapeDynamic protects substituted text from the dynamic stage
func escapeDynamic(s string) string {
	return strings.ReplaceAll(s, "$", `\$`)
}
