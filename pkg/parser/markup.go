package parser

import (
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/muesli/termenv"
)

// maxTagLen bounds how far the markup stage looks for a closing '>'
const maxTagLen = 64

// NamedColors are the sixteen chat colours and their RGB values
var NamedColors = map[string]string{
	"black":        "#000000",
	"dark_blue":    "#0000AA",
	"dark_green":   "#00AA00",
	"dark_aqua":    "#00AAAA",
	"dark_red":     "#AA0000",
	"dark_purple":  "#AA00AA",
	"gold":         "#FFAA00",
	"gray":         "#AAAAAA",
	"grey":         "#AAAAAA",
	"dark_gray":    "#555555",
	"dark_grey":    "#555555",
	"blue":         "#5555FF",
	"green":        "#55FF55",
	"aqua":         "#55FFFF",
	"red":          "#FF5555",
	"light_purple": "#FF55FF",
	"yellow":       "#FFFF55",
	"white":        "#FFFFFF",
}

// decoration is one formatting attribute a tag can switch on
type decoration int

const (
	decBold decoration = iota
	decItalic
	decUnderline
	decStrike
	decObfuscated
)

var decorationTags = map[string]decoration{
	"bold":          decBold,
	"b":             decBold,
	"italic":        decItalic,
	"i":             decItalic,
	"em":            decItalic,
	"underline":     decUnderline,
	"underlined":    decUnderline,
	"u":             decUnderline,
	"strikethrough": decStrike,
	"st":            decStrike,
	"obfuscated":    decObfuscated,
	"obf":           decObfuscated,
}

const colorKey = "color"

// frame is one open tag on the markup stack
type frame struct {
	key   string // what a closing tag must resolve to
	color string // hex, for colour frames
	dec   decoration
}

type tagKind int

const (
	tagUnknown tagKind = iota
	tagColor
	tagDecoration
	tagReset
)

type tag struct {
	kind  tagKind
	key   string
	color string
	dec   decoration
}

// resolveTag classifies the inside of "<...>"
func resolveTag(name string) tag {
	name = strings.ToLower(name)

	if name == "reset" || name == "r" {
		return tag{kind: tagReset}
	}
	if d, ok := decorationTags[name]; ok {
		return tag{kind: tagDecoration, key: decorationKey(d), dec: d}
	}
	if hex, ok := colorValue(name); ok {
		return tag{kind: tagColor, key: colorKey, color: hex}
	}
	if rest, ok := cutAny(name, "color:", "colour:", "c:"); ok {
		if hex, ok := colorValue(rest); ok {
			return tag{kind: tagColor, key: colorKey, color: hex}
		}
	}
	return tag{kind: tagUnknown}
}

// resolveCloser maps the inside of "</...>" to a frame key. "" means "pop one".
func resolveCloser(name string) (string, bool) {
	if name == "" {
		return "", true
	}
	lname := strings.ToLower(name)
	if lname == colorKey || lname == "colour" || lname == "c" {
		return colorKey, true
	}
	t := resolveTag(lname)
	switch t.kind {
	case tagColor, tagDecoration:
		return t.key, true
	default:
		return "", false
	}
}

func decorationKey(d decoration) string {
	switch d {
	case decBold:
		return "bold"
	case decItalic:
		return "italic"
	case decUnderline:
		return "underline"
	case decStrike:
		return "strikethrough"
	default:
		return "obfuscated"
	}
}

func colorValue(s string) (string, bool) {
	if hex, ok := NamedColors[s]; ok {
		return hex, true
	}
	if len(s) == 7 && s[0] == '#' {
		for _, c := range s[1:] {
			if !strings.ContainsRune("0123456789abcdef", c) {
				return "", false
			}
		}
		return strings.ToUpper(s), true
	}
	return "", false
}

func cutAny(s string, prefixes ...string) (string, bool) {
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(s, p); ok {
			return rest, true
		}
	}
	return "", false
}

// markup turns prepared text into literal runs. Each run carries its own
// formatting prefix and reset, so runs can be concatenated or split freely
// by later stages. Escapes for later stages ("\%", "\$") are left in place.
type markup struct {
	profile termenv.Profile
	legacy  bool
	stack   []frame
	buf     strings.Builder
	out     []node.Node
}

func parseMarkup(s string, profile termenv.Profile, legacy bool) node.Node {
	m := &markup{profile: profile, legacy: legacy}
	m.run(s)
	m.flush()
	return node.Seq(m.out...)
}

func (m *markup) run(s string) {
	for i := 0; i < len(s); {
		c := s[i]

		if c == '\\' && i+1 < len(s) {
			if s[i+1] == '<' || (m.legacy && s[i+1] == '&') {
				m.buf.WriteByte(s[i+1])
				i += 2
				continue
			}
			if m.legacy && strings.HasPrefix(s[i+1:], "§") {
				m.buf.WriteString("§")
				i += 1 + len("§")
				continue
			}
		}

		if c == '<' {
			if n, ok := m.tryTag(s[i:]); ok {
				i += n
				continue
			}
		}

		m.buf.WriteByte(c)
		i++
	}
}

// tryTag applies the tag at the start of s and reports how many bytes it
// consumed. Unknown or malformed tags are left for the caller to emit.
func (m *markup) tryTag(s string) (int, bool) {
	end := strings.IndexByte(s, '>')
	if end < 0 || end > maxTagLen {
		return 0, false
	}
	inner := s[1:end]
	if strings.ContainsAny(inner, "<\n ") {
		return 0, false
	}

	if closer, ok := strings.CutPrefix(inner, "/"); ok {
		key, known := resolveCloser(closer)
		if !known {
			return 0, false
		}
		m.flush()
		m.pop(key)
		return end + 1, true
	}

	t := resolveTag(inner)
	switch t.kind {
	case tagReset:
		m.flush()
		m.stack = m.stack[:0]
	case tagColor:
		m.flush()
		m.stack = append(m.stack, frame{key: t.key, color: t.color})
	case tagDecoration:
		m.flush()
		m.stack = append(m.stack, frame{key: t.key, dec: t.dec})
	default:
		return 0, false
	}
	return end + 1, true
}

// pop closes the most recent frame with the given key, and everything
// opened after it. An empty key pops a single frame. Closers with no
// matching frame are consumed silently.
func (m *markup) pop(key string) {
	if key == "" {
		if len(m.stack) > 0 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return
	}
	for i := len(m.stack) - 1; i >= 0; i-- {
		if m.stack[i].key == key {
			m.stack = m.stack[:i]
			return
		}
	}
}

func (m *markup) flush() {
	if m.buf.Len() == 0 {
		return
	}
	text := m.buf.String()
	m.buf.Reset()
	m.out = append(m.out, node.Text(m.style().Styled(text)))
}

func (m *markup) style() termenv.Style {
	st := m.profile.String()
	color := ""
	var decs [decObfuscated + 1]bool
	for _, f := range m.stack {
		if f.key == colorKey {
			color = f.color
			continue
		}
		decs[f.dec] = true
	}

	if color != "" {
		st = st.Foreground(m.profile.Color(color))
	}
	if decs[decBold] {
		st = st.Bold()
	}
	if decs[decItalic] {
		st = st.Italic()
	}
	if decs[decUnderline] {
		st = st.Underline()
	}
	if decs[decStrike] {
		st = st.CrossOut()
	}
	if decs[decObfuscated] {
		st = st.Blink()
	}
	return st
}
