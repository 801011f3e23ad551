// Package parser compiles template strings into node trees.
//
// Parsing runs four stages in a fixed order:
//
//	0. pre-parse   opt-in: line endings and NFC, legacy &x codes
//	1. markup      <red>, <bold>, </> ... baked into formatted literals
//	2. globals     %namespace:path% substituted at parse time
//	3. dynamic     ${name} kept as a Placeholder for render time
//
// Parsing never fails: anything a stage does not recognise stays text.
package parser

import (
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/logging"
	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/muesli/termenv"
)

var log = logging.GetLogger("parser")

// Parser is immutable once built and safe for concurrent use
type Parser struct {
	profile   termenv.Profile
	legacy    bool
	normalize bool
	globals   GlobalLookup
	dynamic   DynamicFunc
}

// Option configures a Parser
type Option func(*Parser)

// WithProfile selects the colour profile markup is rendered with
func WithProfile(p termenv.Profile) Option {
	return func(ps *Parser) { ps.profile = p }
}

// WithLegacyCodes toggles rewriting of &x formatting codes
func WithLegacyCodes(on bool) Option {
	return func(ps *Parser) { ps.legacy = on }
}

// WithNormalization toggles line ending and NFC normalisation of templates
func WithNormalization(on bool) Option {
	return func(ps *Parser) { ps.normalize = on }
}

// WithGlobals sets the global placeholder registry
func WithGlobals(g GlobalLookup) Option {
	return func(ps *Parser) { ps.globals = g }
}

// New returns a parser. Defaults: ANSI256 profile, no pre-parse rewrites,
// only the built-in globals. Text without markup or placeholders renders
// back unchanged.
func New(opts ...Option) *Parser {
	p := &Parser{
		profile: termenv.ANSI256,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.globals == nil {
		p.globals = NewGlobals(nil)
	}
	return p
}

// WithDynamic returns a copy of p whose dynamic stage is bound to fn
func (p *Parser) WithDynamic(fn DynamicFunc) *Parser {
	bound := *p
	bound.dynamic = fn
	return &bound
}

// Profile returns the colour profile used for markup
func (p *Parser) Profile() termenv.Profile {
	return p.profile
}

// Parse compiles raw. Only the empty string yields node.Empty; a template
// that produces no text, such as "<red></red>", is an empty Literal.
func (p *Parser) Parse(raw string) node.Node {
	if raw == "" {
		return node.Empty
	}

	prepared := Prepare(raw, p.legacy, p.normalize)
	tree := parseMarkup(prepared, p.profile, p.legacy)
	tree = expandGlobals(tree, p.globals)
	tree = expandDynamic(tree, p.dynamic)
	tree = node.Seq(tree)
	if node.IsEmpty(tree) {
		return node.Text("")
	}
	return tree
}

// ParseProfile maps a config name onto a termenv profile
func ParseProfile(name string) (termenv.Profile, bool) {
	switch strings.ToLower(name) {
	case "ascii", "none":
		return termenv.Ascii, true
	case "ansi", "ansi16":
		return termenv.ANSI, true
	case "ansi256":
		return termenv.ANSI256, true
	case "truecolor", "truecolour", "24bit":
		return termenv.TrueColor, true
	default:
		return termenv.Ascii, false
	}
}
