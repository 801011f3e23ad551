package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// legacyCodes maps the single-character formatting codes that follow '&' or
// '§' onto markup tags.
var legacyCodes = map[byte]string{
	'0': "<black>",
	'1': "<dark_blue>",
	'2': "<dark_green>",
	'3': "<dark_aqua>",
	'4': "<dark_red>",
	'5': "<dark_purple>",
	'6': "<gold>",
	'7': "<gray>",
	'8': "<dark_gray>",
	'9': "<blue>",
	'a': "<green>",
	'b': "<aqua>",
	'c': "<red>",
	'd': "<light_purple>",
	'e': "<yellow>",
	'f': "<white>",
	'k': "<obfuscated>",
	'l': "<bold>",
	'm': "<strikethrough>",
	'n': "<underline>",
	'o': "<italic>",
	'r': "<reset>",
}

// Prepare runs the opt-in rewrites on raw template text before any other
// stage sees it. With normalize, line endings become "\n" and text is
// NFC-normalised. With legacy, '&x' / '§x' formatting codes are rewritten
// as markup tags; a backslash before '&' or '§' keeps the code literal and
// is removed later by the markup stage. With neither, s is returned as is.
// Prepare is idempotent.
func Prepare(s string, legacy, normalize bool) string {
	if normalize {
		if strings.IndexByte(s, '\r') >= 0 {
			s = strings.ReplaceAll(s, "\r\n", "\n")
			s = strings.ReplaceAll(s, "\r", "\n")
		}
		s = norm.NFC.String(s)
	}
	if !legacy {
		return s
	}
	return rewriteLegacy(s)
}

func rewriteLegacy(s string) string {
	if !strings.ContainsAny(s, "&§") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); {
		prefixLen := 0
		switch {
		case s[i] == '&':
			prefixLen = 1
		case strings.HasPrefix(s[i:], "§"):
			prefixLen = len("§")
		}

		if prefixLen == 0 {
			b.WriteByte(s[i])
			i++
			continue
		}

		escaped := i > 0 && s[i-1] == '\\'
		if !escaped && i+prefixLen < len(s) {
			if tag, ok := legacyCodes[lower(s[i+prefixLen])]; ok {
				b.WriteString(tag)
				i += prefixLen + 1
				continue
			}
		}
		b.WriteString(s[i : i+prefixLen])
		i += prefixLen
	}
	return b.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
