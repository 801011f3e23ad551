package parser_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/arthur-debert/chatstyle/pkg/parser"
	"github.com/arthur-debert/chatstyle/pkg/registry"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asciiParser(opts ...parser.Option) *parser.Parser {
	return parser.New(append([]parser.Option{parser.WithProfile(termenv.Ascii)}, opts...)...)
}

func assertTree(t *testing.T, want, got node.Node) {
	t.Helper()
	assert.True(t, node.Equal(want, got), "got %s\nwant %s", got, want)
}

func TestParseEmpty(t *testing.T) {
	assert.Same(t, node.Empty, parser.New().Parse(""))

	globals := parser.NewGlobals(map[string]string{"server:blank": ""})
	p := asciiParser(parser.WithLegacyCodes(true), parser.WithGlobals(globals))
	for _, in := range []string{"<red></red>", "&r", "%server:blank%", "<bold></>"} {
		got := p.Parse(in)
		assert.False(t, node.IsEmpty(got), "input %q", in)
		assertTree(t, node.Text(""), got)
	}
}

func TestParseAsciiProfile(t *testing.T) {
	p := asciiParser()

	tests := []struct {
		name  string
		input string
		want  node.Node
	}{
		{"plain text", "hello world", node.Text("hello world")},
		{"colour tags stripped", "<red>Hello</red> world", node.Text("Hello world")},
		{"decorations stripped", "<b>a</b><i>b</i><u>c</u><st>d</st><obf>e</obf>", node.Text("abcde")},
		{"hex colour", "<#ff00AA>x</#ff00aa>", node.Text("x")},
		{"color prefix", "<color:gold>x</color> <c:#00ff00>y</c>", node.Text("x y")},
		{"unknown tag kept", "<click:run_command:/spawn>go", node.Text("<click:run_command:/spawn>go")},
		{"unknown closer kept", "a</hover>", node.Text("a</hover>")},
		{"unterminated tag kept", "a < b", node.Text("a < b")},
		{"escaped tag", `\<red>x`, node.Text("<red>x")},
		{"empty tag kept", "<>", node.Text("<>")},
		{"ampersand text", "Tom & Jerry", node.Text("Tom & Jerry")},
		{"ampersand before code letter", "Q&A at R&D", node.Text("Q&A at R&D")},
		{"section sign text", "§aGreen", node.Text("§aGreen")},
		{"backslash ampersand kept", `a\&b`, node.Text(`a\&b`)},
		{"crlf kept", "a\r\nb", node.Text("a\r\nb")},
		{"decomposed accent kept", "Cafe\u0301", node.Text("Cafe\u0301")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, tt.want, p.Parse(tt.input))
		})
	}
}

func TestParseLegacyCodes(t *testing.T) {
	p := asciiParser(parser.WithLegacyCodes(true))

	tests := []struct {
		name  string
		input string
		want  node.Node
	}{
		{"legacy codes", "&cRed &lBold&r plain", node.Text("Red Bold plain")},
		{"section sign codes", "§aGreen", node.Text("Green")},
		{"upper case code", "&CRed", node.Text("Red")},
		{"escaped legacy code", `\&cnot red`, node.Text("&cnot red")},
		{"escaped section sign", `\§anot green`, node.Text("§anot green")},
		{"non-code letter", "Tom & Jerry&x", node.Text("Tom & Jerry&x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, tt.want, p.Parse(tt.input))
		})
	}

	assertTree(t, node.Text("&cRed"), asciiParser(parser.WithLegacyCodes(false)).Parse("&cRed"))
}

func TestParseNormalization(t *testing.T) {
	p := asciiParser(parser.WithNormalization(true))

	assertTree(t, node.Text("a\nb\nc"), p.Parse("a\r\nb\rc"))
	assertTree(t, node.Text("Caf\u00e9"), p.Parse("Cafe\u0301"))
	assertTree(t, node.Text("Q&A"), p.Parse("Q&A"))
}

func TestParseMarkupTrueColor(t *testing.T) {
	prof := termenv.TrueColor
	p := parser.New(parser.WithProfile(prof), parser.WithLegacyCodes(true))

	red := func(s string) string {
		return prof.String(s).Foreground(prof.Color("#FF5555")).String()
	}
	redBold := func(s string) string {
		return prof.String(s).Foreground(prof.Color("#FF5555")).Bold().String()
	}
	bold := func(s string) string {
		return prof.String(s).Bold().String()
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single colour", "<red>Hi</red>!", red("Hi") + "!"},
		{"nested", "<red>a<bold>b</bold>c</red>", red("a") + redBold("b") + red("c")},
		{"closing colour pops later frames", "<red>a<bold>b</red>c", red("a") + redBold("b") + "c"},
		{"pop one", "<bold><red>a</>b", redBold("a") + bold("b")},
		{"reset clears all", "<bold><red>a<reset>b", redBold("a") + "b"},
		{"unclosed closes at end", "<red>abc", red("abc")},
		{"legacy colour", "&cHi", red("Hi")},
		{"inner colour wins", "<blue><red>x", red("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, node.Text(tt.want), p.Parse(tt.input))
		})
	}
}

func TestPlaceholderInsideStyledRun(t *testing.T) {
	prof := termenv.TrueColor
	p := parser.New(parser.WithProfile(prof))

	styled := prof.String("\x00").Foreground(prof.Color("#FF5555")).String()
	prefix, suffix, found := strings.Cut(styled, "\x00")
	require.True(t, found)

	want := node.Seq(node.Text(prefix), node.Var("player"), node.Text(suffix))
	assertTree(t, want, p.Parse("<red>${player}</red>"))
}

func TestParseGlobals(t *testing.T) {
	globals := parser.NewGlobals(map[string]string{
		"server:name": "Lobby",
		"server:odd":  "costs ${5}",
	})
	require.NoError(t, globals.Set("server:echo", func(args string) string { return "<" + args + ">" }))
	p := asciiParser(parser.WithGlobals(globals))

	tests := []struct {
		name  string
		input string
		want  node.Node
	}{
		{"known", "Welcome to %server:name%!", node.Text("Welcome to Lobby!")},
		{"unknown kept", "%server:missing% here", node.Text("%server:missing% here")},
		{"escaped", `\%server:name%`, node.Text("%server:name%")},
		{"percent sign text", "100% sure", node.Text("100% sure")},
		{"args passed", "%server:echo a b%", node.Text("<a b>")},
		{"value not re-parsed as placeholder", "%server:odd%", node.Text("costs ${5}")},
		{"version built in", "v%chatstyle:version%", node.Text("vdev")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, tt.want, p.Parse(tt.input))
		})
	}
}

func TestParseDynamic(t *testing.T) {
	p := asciiParser()

	tests := []struct {
		name  string
		input string
		want  node.Node
	}{
		{
			name:  "chat line",
			input: "<${player}> ${message}",
			want:  node.Seq(node.Text("<"), node.Var("player"), node.Text("> "), node.Var("message")),
		},
		{
			name:  "args",
			input: "${emoji big}",
			want:  &node.Placeholder{Name: "emoji", Args: "big"},
		},
		{
			name:  "escaped",
			input: `\${player}`,
			want:  node.Text("${player}"),
		},
		{
			name:  "empty name is text",
			input: "${} ${ x}",
			want:  node.Text("${} ${ x}"),
		},
		{
			name:  "dollar text",
			input: "costs $5",
			want:  node.Text("costs $5"),
		},
		{
			name:  "unterminated",
			input: "${player",
			want:  node.Text("${player"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, tt.want, p.Parse(tt.input))
		})
	}
}

func TestWithDynamicBinds(t *testing.T) {
	base := asciiParser()
	var seen []string
	bound := base.WithDynamic(func(name, args string) node.Node {
		seen = append(seen, name)
		return node.Text("😀")
	})

	assertTree(t, node.Text("[😀]"), bound.Parse("[${emoji}]"))
	assert.Equal(t, []string{"emoji"}, seen)

	// the original parser is untouched
	assertTree(t, node.Seq(node.Text("["), node.Var("emoji"), node.Text("]")), base.Parse("[${emoji}]"))

	keep := base.WithDynamic(func(string, string) node.Node { return nil })
	assertTree(t, node.Var("x"), keep.Parse("${x}"))
}

func TestParseDeterministic(t *testing.T) {
	p := parser.New(parser.WithProfile(termenv.TrueColor))
	inputs := []string{
		"<red>${player}</red>: ${message}",
		"&l%chatstyle:version% <click:x>",
		"plain",
	}
	for _, in := range inputs {
		assertTree(t, p.Parse(in), p.Parse(in))
	}
}

func TestPrepareIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"a\r\nb\rc",
		"e\u0301cole",
		"&cRed &lbold",
		`\&cescaped`,
		"§aGreen & co",
		"&",
		"trailing §",
	}

	for _, legacy := range []bool{true, false} {
		for _, normalize := range []bool{true, false} {
			for _, in := range inputs {
				once := parser.Prepare(in, legacy, normalize)
				assert.Equal(t, once, parser.Prepare(once, legacy, normalize), "input %q", in)
			}
		}
	}

	for _, in := range inputs {
		assert.Equal(t, in, parser.Prepare(in, false, false), "input %q", in)
	}
	assert.Equal(t, "\u00e9cole", parser.Prepare("e\u0301cole", false, true))
	assert.Equal(t, "<red>x", parser.Prepare("&Cx", true, false))
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in   string
		want termenv.Profile
		ok   bool
	}{
		{"ascii", termenv.Ascii, true},
		{"ANSI", termenv.ANSI, true},
		{"ansi256", termenv.ANSI256, true},
		{"truecolor", termenv.TrueColor, true},
		{"rainbow", termenv.Ascii, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parser.ParseProfile(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGlobalsRegistryType(t *testing.T) {
	var _ parser.GlobalLookup = registry.New[parser.Global]()
}
