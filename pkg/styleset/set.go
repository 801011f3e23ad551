package styleset

import (
	"time"

	"github.com/arthur-debert/chatstyle/pkg/config"
	"github.com/arthur-debert/chatstyle/pkg/emoticon"
	"github.com/arthur-debert/chatstyle/pkg/identifier"
	"github.com/arthur-debert/chatstyle/pkg/loader"
	"github.com/arthur-debert/chatstyle/pkg/logging"
	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/arthur-debert/chatstyle/pkg/predicate"
	"github.com/arthur-debert/chatstyle/pkg/render"
	"github.com/arthur-debert/chatstyle/pkg/style"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
)

var log = logging.GetLogger("styleset")

// DefaultName names the default style
const DefaultName = "default"

// Options tunes how a Set is built
type Options struct {
	// Profile overrides the configured colour profile
	Profile *termenv.Profile
	// Loader overrides the emoticon data loader
	Loader emoticon.Loader
}

// Set is one generation of built styles
type Set struct {
	Default *style.Style
	// Tiers are the permission styles, in the order they are tried
	Tiers []*style.Style

	Generation uuid.UUID
	BuiltAt    time.Time
	Config     *config.Config

	// overlays: index 0 is the default style alone, i+1 is tier i over it
	emoticons  []map[string]node.Node
	formatting []map[string]bool
}

// Build resolves every style of cfg. Tiers use the default style as their
// fallback.
func Build(cfg *config.Config, opts Options) (*Set, error) {
	p, err := cfg.NewParser()
	if err != nil {
		return nil, err
	}
	if opts.Profile != nil {
		p = cfg.NewParserWithProfile(*opts.Profile)
	}

	tiers, err := cfg.Tiers()
	if err != nil {
		return nil, err
	}

	l := opts.Loader
	if l == nil {
		l = loader.NewDefault(cfg.ResolvedDataDir())
	}
	dec := emoticon.NewDecoder(p, l)

	s := &Set{
		Generation: uuid.New(),
		BuiltAt:    time.Now(),
		Config:     cfg,
	}
	s.Default = style.Build(cfg.DefaultStyle, nil, style.BuildOptions{Name: DefaultName, Parser: p, Decoder: dec})
	for _, t := range tiers {
		s.Tiers = append(s.Tiers, style.Build(t.Raw, s.Default, style.BuildOptions{Name: t.Name, Parser: p, Decoder: dec}))
	}
	s.buildOverlays()

	for _, st := range s.Styles() {
		ev := log.Debug()
		if !st.Report().Clean() {
			ev = log.Info()
		}
		ev.Str("style", st.Name()).
			Int("emoticons", st.EmoticonCount()).
			Str("report", st.Report().Summary()).
			Msg("Built style")
	}
	return s, nil
}

func (s *Set) buildOverlays() {
	base := map[string]node.Node{}
	s.Default.EachEmoticon(func(trigger string, n node.Node) { base[trigger] = n })
	baseFormatting := s.Default.FormattingFlags()

	s.emoticons = []map[string]node.Node{base}
	s.formatting = []map[string]bool{baseFormatting}

	for _, t := range s.Tiers {
		em := make(map[string]node.Node, len(base)+t.EmoticonCount())
		for k, v := range base {
			em[k] = v
		}
		t.EachEmoticon(func(trigger string, n node.Node) { em[trigger] = n })

		f := make(map[string]bool, len(baseFormatting))
		for k, v := range baseFormatting {
			f[k] = v
		}
		for k, v := range t.FormattingFlags() {
			f[k] = v
		}

		s.emoticons = append(s.emoticons, em)
		s.formatting = append(s.formatting, f)
	}
}

// selectIndex returns the overlay index for subject
func (s *Set) selectIndex(subject predicate.Subject) int {
	for i, t := range s.Tiers {
		if t.Require().Test(subject) {
			return i + 1
		}
	}
	return 0
}

// For returns the first tier whose requirement subject meets, or the
// default style
func (s *Set) For(subject predicate.Subject) *style.Style {
	if i := s.selectIndex(subject); i > 0 {
		return s.Tiers[i-1]
	}
	return s.Default
}

// EmoticonsFor returns the default emoticons overlaid by the selected
// tier's. The map is shared and must not be modified.
func (s *Set) EmoticonsFor(subject predicate.Subject) map[string]node.Node {
	return s.emoticons[s.selectIndex(subject)]
}

// FormattingFor returns the default formatting flags overlaid by the
// selected tier's. The map is shared and must not be modified.
func (s *Set) FormattingFor(subject predicate.Subject) map[string]bool {
	return s.formatting[s.selectIndex(subject)]
}

// Render renders slot with the style selected for subject
func (s *Set) Render(subject predicate.Subject, slot style.Slot, ctx render.Context) render.Result {
	return s.For(subject).Render(slot, ctx)
}

// Custom renders a custom message with the style selected for subject
func (s *Set) Custom(subject predicate.Subject, id identifier.ID, receiver *string, displayName, message string) render.Result {
	return s.For(subject).Custom(id, receiver, displayName, message)
}

// Styles returns the default style followed by the tiers
func (s *Set) Styles() []*style.Style {
	return append([]*style.Style{s.Default}, s.Tiers...)
}

// Style finds a style by name
func (s *Set) Style(name string) (*style.Style, bool) {
	for _, st := range s.Styles() {
		if st.Name() == name {
			return st, true
		}
	}
	return nil, false
}

// Clean reports whether every style built without skips or warnings
func (s *Set) Clean() bool {
	for _, st := range s.Styles() {
		if !st.Report().Clean() {
			return false
		}
	}
	return true
}
